package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"timeboard/internal/common"
	"timeboard/internal/datex"
	"timeboard/internal/server/config"
	"timeboard/internal/server/repositories/repomanager"
	"timeboard/internal/timesheet"
)

// ReportService serves the manager dashboards: team completion over an
// arbitrary range and the monthly summary with type/project breakdowns.
type ReportService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	hoursPerDay         float64
	expectedWorkingDays int
}

// NewReportService constructs a ReportService using repositories and server config.
func NewReportService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ReportService {
	return &ReportService{
		db:                  db,
		repomanager:         m,
		hoursPerDay:         cfg.HoursPerDay,
		expectedWorkingDays: cfg.ExpectedWorkingDays,
	}
}

// TeamCompletion computes per-user filled days and hour totals for every
// profile over the inclusive [from, to] range ("YYYY-MM-DD" bounds).
func (s *ReportService) TeamCompletion(ctx context.Context, from, to string) ([]timesheet.CompletionRow, error) {
	fromDay, err := datex.ParseDay(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	toDay, err := datex.ParseDay(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	if toDay.Before(fromDay) {
		return nil, fmt.Errorf("%w: from must not be after to", common.ErrorValidation)
	}

	profiles, entries, err := s.loadRange(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	return timesheet.ComputeCompletion(profiles, entries, fromDay, toDay), nil
}

// MonthlySummary aggregates one "YYYY-MM" month: total hours, day
// equivalents, per-type and per-project shares, completion rows, and the
// below-expected list. When no expected-working-days override is configured
// the weekday count of the month is used.
func (s *ReportService) MonthlySummary(ctx context.Context, month string) (*timesheet.SummaryStats, error) {
	year, m, err := datex.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	from, to := datex.MonthBounds(year, m)

	profiles, entries, err := s.loadRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	expected := s.expectedWorkingDays
	if expected == 0 {
		expected = datex.WorkingDays(year, m)
	}

	stats := timesheet.ComputeMonthlySummaryStats(profiles, entries, from, to, s.hoursPerDay, expected)
	return &stats, nil
}

func (s *ReportService) loadRange(ctx context.Context, from, to time.Time) ([]timesheet.Profile, []timesheet.Entry, error) {
	profilesRepo := s.repomanager.Profiles(s.db)
	rows, err := profilesRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing profiles: %v", err)
	}
	profiles := make([]timesheet.Profile, len(rows))
	for i, p := range rows {
		profiles[i] = timesheet.Profile{UserID: p.UserID, Name: p.DisplayName}
	}

	activitiesRepo := s.repomanager.Activities(s.db)
	acts, err := activitiesRepo.ListForRange(ctx, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing activities: %v", err)
	}
	return profiles, toEntries(acts), nil
}
