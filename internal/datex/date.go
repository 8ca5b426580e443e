// Package datex provides calendar-day helpers shared by the timesheet core,
// the export formatters, and the services. Days are represented as time.Time
// values truncated to midnight UTC; the wire format is "YYYY-MM-DD".
package datex

import (
	"fmt"
	"time"
)

// DayFormat is the wire and storage format for calendar days.
const DayFormat = "2006-01-02"

// ParseDay parses a "YYYY-MM-DD" string into a day value (midnight UTC).
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatDay renders a day value as "YYYY-MM-DD".
func FormatDay(d time.Time) string {
	return d.Format(DayFormat)
}

// StartOfDay truncates t to midnight UTC, discarding any time component.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthBounds returns the first and last day of the given month, both at
// midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return first, last
}

// WorkingDays returns the number of Monday-to-Friday days in the given month.
func WorkingDays(year int, month time.Month) int {
	n := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if !IsWeekend(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)) {
			n++
		}
	}
	return n
}

// ParseMonth parses a "YYYY-MM" string into its year and month.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

// Between reports whether day d lies in [from, to], comparing calendar days
// inclusively on both ends.
func Between(d, from, to time.Time) bool {
	d = StartOfDay(d)
	return !d.Before(StartOfDay(from)) && !d.After(StartOfDay(to))
}
