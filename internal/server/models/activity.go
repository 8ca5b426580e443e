package models

import (
	"time"

	"timeboard/internal/timesheet"
)

// Activity is one reported unit of work time for a user on a calendar day.
// Rows for a (user, day) are replaced wholesale on save; only the billing
// code is mutated in place, by a manager.
type Activity struct {
	ID          string
	UserID      string
	Day         time.Time
	Ticket      string
	Subject     string
	Project     string
	Hours       float64
	Type        timesheet.ActivityType
	BillingCode string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToEntry projects the activity onto the read model the aggregation
// functions consume.
func (a *Activity) ToEntry() timesheet.Entry {
	return timesheet.Entry{
		UserID:  a.UserID,
		Day:     a.Day,
		Hours:   a.Hours,
		Type:    a.Type,
		Project: a.Project,
	}
}
