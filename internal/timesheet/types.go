// Package timesheet implements the domain core of timeboard: activity-type
// normalization, daily hour capping, month-view aggregation, and
// completion/summary statistics. Everything in this package is a pure
// function over in-memory values; persistence and transport live elsewhere.
package timesheet

import (
	"time"
)

// ActivityType is one member of the fixed activity-type enumeration.
// Values are stored verbatim in the activities table and rendered as-is
// in exports, so members double as display strings.
type ActivityType string

const (
	TypeWork        ActivityType = "Work"
	TypeMeeting     ActivityType = "Meeting"
	TypeSupport     ActivityType = "Support"
	TypeProject     ActivityType = "Project"
	TypeEvolution   ActivityType = "Evolution"
	TypeAnomaly     ActivityType = "Anomaly"
	TypeAppIncident ActivityType = "Application Incident"
	TypeUndefined   ActivityType = "Undefined"
	TypeOther       ActivityType = "Other" // catch-all of earlier deployments, kept so stored rows round-trip
	TypeLeave       ActivityType = "Leave"
	TypeWeekend     ActivityType = "Weekend"
	TypeTraining    ActivityType = "Training"
)

// AllActivityTypes lists every enumeration member, in display order.
var AllActivityTypes = []ActivityType{
	TypeWork,
	TypeMeeting,
	TypeSupport,
	TypeProject,
	TypeEvolution,
	TypeAnomaly,
	TypeAppIncident,
	TypeUndefined,
	TypeOther,
	TypeLeave,
	TypeWeekend,
	TypeTraining,
}

// IsValid reports whether t is a member of the enumeration.
func (t ActivityType) IsValid() bool {
	for _, v := range AllActivityTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DefaultActivityType is the fallback category used when normalization finds
// no match and no deployment-specific default is configured.
const DefaultActivityType = TypeUndefined

// Row is one proposed or submitted time-entry line for a single day. Rows
// flow through the same normalize-and-cap pipeline whether they come from
// the assist service or from a direct user submission.
type Row struct {
	Ticket      string       `json:"ticket"`
	Subject     string       `json:"subject"`
	Project     string       `json:"project"`
	Hours       float64      `json:"hours"`
	Type        ActivityType `json:"type"`
	BillingCode string       `json:"billing_code,omitempty"`
}

// Entry is the read-side projection of one persisted activity row, carrying
// just the fields the aggregation functions consume.
type Entry struct {
	UserID  string
	Day     time.Time
	Hours   float64
	Type    ActivityType
	Project string
}

// Profile identifies one account for the completion calculator. Profiles with
// zero entries still appear in results with FilledDays = 0.
type Profile struct {
	UserID string
	Name   string
}

// DayStatus tags one cell of a month view.
type DayStatus string

const (
	StatusWeekend DayStatus = "weekend"
	StatusFilled  DayStatus = "filled"
	StatusEmpty   DayStatus = "empty"
)

// DayCell is one calendar day of a month view: aggregate hours, line count,
// and a status tag. A month view always contains one cell per day of the
// month, whether or not entries exist.
type DayCell struct {
	Day        string    `json:"day"`
	TotalHours float64   `json:"total_hours"`
	LinesCount int       `json:"lines_count"`
	Status     DayStatus `json:"status"`
}

// CompletionRow is one user's filled-day count and hour total over a range.
// Multiple entries on the same day count that day once.
type CompletionRow struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	FilledDays int     `json:"filled_days"`
	TotalHours float64 `json:"total_hours"`
}

// TypeShare is one activity-type bucket of a period summary.
type TypeShare struct {
	Type    ActivityType `json:"type"`
	Hours   float64      `json:"hours"`
	Percent int          `json:"percent"`
}

// ProjectShare is one project bucket of a period summary.
type ProjectShare struct {
	Project string  `json:"project"`
	Hours   float64 `json:"hours"`
	Percent int     `json:"percent"`
}

// SummaryStats aggregates a period for the manager dashboard: totals,
// per-type and per-project breakdowns, per-user completion, and the users
// whose distinct filled days fall below the expected working days.
type SummaryStats struct {
	TotalHours          float64         `json:"total_hours"`
	TotalDayEquivalents float64         `json:"total_day_equivalents"`
	ByType              []TypeShare     `json:"by_type"`
	ByProject           []ProjectShare  `json:"by_project"`
	Completion          []CompletionRow `json:"completion"`
	BelowExpected       []CompletionRow `json:"below_expected"`
}
