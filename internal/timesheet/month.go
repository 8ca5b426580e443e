package timesheet

import (
	"time"

	"timeboard/internal/datex"
)

// BuildMonthView folds entries into one DayCell per calendar day of the given
// month, in ascending order. Days without entries still get a cell, so the
// result length always equals the number of days in the month. Hours are
// rounded to 1 decimal. Weekend status wins over filled/empty.
func BuildMonthView(year int, month time.Month, entries []Entry) []DayCell {
	type bucket struct {
		hours float64
		lines int
	}
	byDay := make(map[int]bucket)
	for _, e := range entries {
		if e.Day.Year() != year || e.Day.Month() != month {
			continue
		}
		b := byDay[e.Day.Day()]
		b.hours += e.Hours
		b.lines++
		byDay[e.Day.Day()] = b
	}

	days := datex.DaysInMonth(year, month)
	cells := make([]DayCell, 0, days)
	for d := 1; d <= days; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		b := byDay[d]

		status := StatusEmpty
		switch {
		case datex.IsWeekend(day):
			status = StatusWeekend
		case b.lines > 0:
			status = StatusFilled
		}

		cells = append(cells, DayCell{
			Day:        datex.FormatDay(day),
			TotalHours: Round1(b.hours),
			LinesCount: b.lines,
			Status:     status,
		})
	}
	return cells
}
