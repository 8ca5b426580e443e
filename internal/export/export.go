// Package export renders activity rows as delimited text or spreadsheet
// files for download. Formatting is pure; callers fetch and order the rows.
package export

import (
	"math"
	"time"

	"timeboard/internal/timesheet"
)

// ChargeUnit selects how the charge column is expressed.
type ChargeUnit string

const (
	// UnitHours exports the stored hour values unchanged.
	UnitHours ChargeUnit = "hours"
	// UnitDays exports hours divided by the deployment's hours-per-day.
	UnitDays ChargeUnit = "days"
)

// Record is one exported line. Services map persisted activities onto it.
type Record struct {
	Day         time.Time
	Ticket      string
	Subject     string
	Project     string
	Hours       float64
	Type        timesheet.ActivityType
	BillingCode string
}

// Options control the charge column. HoursPerDay is only consulted when
// Unit is UnitDays; non-positive values fall back to hours.
type Options struct {
	Unit        ChargeUnit
	HoursPerDay float64
}

// charge converts an hour value according to the options, rounded to two
// decimals either way.
func (o Options) charge(hours float64) float64 {
	if o.Unit == UnitDays && o.HoursPerDay > 0 {
		return round2(hours / o.HoursPerDay)
	}
	return round2(hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitizeCell neutralizes spreadsheet formula injection: a leading '=', '+',
// '-' or '@' would be evaluated by common spreadsheet tools, so such values
// are prefixed with a single quote.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
