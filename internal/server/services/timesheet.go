package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"timeboard/internal/common"
	"timeboard/internal/datex"
	"timeboard/internal/dbx"
	"timeboard/internal/server/config"
	"timeboard/internal/server/models"
	"timeboard/internal/server/repositories/repomanager"
	"timeboard/internal/timesheet"
)

// MonthData is the month view plus the raw activities it was built from,
// so clients can render the calendar and the per-day line detail together.
type MonthData struct {
	Year       int
	Month      time.Month
	Cells      []timesheet.DayCell
	Activities []*models.Activity
}

// TimesheetService owns the member-facing write path (replace-day saves,
// always through the normalize-and-cap pipeline) and the month read view.
// The manager-only billing-code update lives here too; it touches a single
// column and intentionally skips the ceiling pipeline.
type TimesheetService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	dailyCeiling float64
	defaultType  timesheet.ActivityType
}

// NewTimesheetService constructs a TimesheetService using repositories and
// server config.
func NewTimesheetService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TimesheetService {
	return &TimesheetService{
		db:           db,
		repomanager:  m,
		dailyCeiling: cfg.DailyCeiling,
		defaultType:  timesheet.NormalizeTypeWithDefault(cfg.DefaultActivityType, timesheet.DefaultActivityType),
	}
}

// MonthView loads the user's activities for the given "YYYY-MM" month and
// folds them into one cell per calendar day.
func (s *TimesheetService) MonthView(ctx context.Context, userID, month string) (*MonthData, error) {
	year, m, err := datex.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	from, to := datex.MonthBounds(year, m)

	repo := s.repomanager.Activities(s.db)
	acts, err := repo.ListForUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %v", err)
	}

	return &MonthData{
		Year:       year,
		Month:      m,
		Cells:      timesheet.BuildMonthView(year, m, toEntries(acts)),
		Activities: acts,
	}, nil
}

// SaveDay replaces every activity the user has on the given "YYYY-MM-DD" day
// with the submitted rows. The rows pass through the shared pipeline first
// (trim, normalize types, clamp, cap at the daily ceiling), then the delete
// and the inserts run inside one transaction. An empty row set clears the day.
func (s *TimesheetService) SaveDay(ctx context.Context, userID, day string, rows []timesheet.Row) ([]*models.Activity, error) {
	d, err := datex.ParseDay(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	for _, r := range rows {
		if math.IsNaN(r.Hours) || math.IsInf(r.Hours, 0) {
			return nil, fmt.Errorf("%w: hours must be a number", common.ErrorValidation)
		}
	}

	prepared := timesheet.PrepareRows(rows, s.defaultType, s.dailyCeiling)

	items := make([]*models.Activity, len(prepared))
	for i, r := range prepared {
		items[i] = &models.Activity{
			UserID:      userID,
			Day:         d,
			Ticket:      r.Ticket,
			Subject:     r.Subject,
			Project:     r.Project,
			Hours:       r.Hours,
			Type:        r.Type,
			BillingCode: r.BillingCode,
		}
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Activities(tx)
		if err := repoTx.DeleteForDay(ctx, userID, d); err != nil {
			return fmt.Errorf("error clearing day: %v", err)
		}
		if len(items) == 0 {
			return nil
		}
		if err := repoTx.InsertBatch(ctx, items); err != nil {
			return fmt.Errorf("error inserting activities: %v", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateBillingCode sets the billing code of a single activity, leaving
// hours and types untouched. Role enforcement happens at the transport
// boundary; this write skips the ceiling pipeline so managers can correct
// records as stored.
func (s *TimesheetService) UpdateBillingCode(ctx context.Context, activityID, code string) (*models.Activity, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, fmt.Errorf("%w: activity id is required", common.ErrorValidation)
	}

	repo := s.repomanager.Activities(s.db)
	if err := repo.UpdateBillingCode(ctx, activityID, strings.TrimSpace(code)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating billing code: %v", err)
	}
	return repo.GetByID(ctx, activityID)
}

func toEntries(acts []*models.Activity) []timesheet.Entry {
	entries := make([]timesheet.Entry, len(acts))
	for i, a := range acts {
		entries[i] = a.ToEntry()
	}
	return entries
}
