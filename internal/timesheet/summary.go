package timesheet

import (
	"math"
	"sort"
	"time"

	"timeboard/internal/datex"
)

// ComputeCompletion returns one row per profile with the number of distinct
// days filled and the hour total over [from, to], both ends inclusive.
// Profiles with no entries in the range still appear with FilledDays = 0, and
// several entries on the same day count that day once. Results keep the
// profile order of the input.
func ComputeCompletion(profiles []Profile, entries []Entry, from, to time.Time) []CompletionRow {
	type acc struct {
		hours float64
		days  map[string]struct{}
	}
	byUser := make(map[string]*acc, len(profiles))

	rows := make([]CompletionRow, len(profiles))
	for i, p := range profiles {
		rows[i] = CompletionRow{UserID: p.UserID, Name: p.Name}
		byUser[p.UserID] = &acc{days: make(map[string]struct{})}
	}

	for _, e := range entries {
		a, ok := byUser[e.UserID]
		if !ok {
			// Entry owner without a profile (deactivated account); skip
			// rather than invent a row.
			continue
		}
		if !datex.Between(e.Day, from, to) {
			continue
		}
		a.hours += e.Hours
		a.days[datex.FormatDay(e.Day)] = struct{}{}
	}

	for i := range rows {
		a := byUser[rows[i].UserID]
		rows[i].FilledDays = len(a.days)
		rows[i].TotalHours = Round1(a.hours)
	}
	return rows
}

// percentOf returns part's share of total as a whole percent, 0 when the
// total is 0.
func percentOf(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}

// ComputeMonthlySummaryStats aggregates a period for the manager dashboard:
// hour totals, per-type and per-project breakdowns with whole-percent shares,
// completion per profile, and the profiles whose distinct filled days fall
// below expectedDays. Day-equivalents divide hours by hoursPerDay; a
// non-positive hoursPerDay disables that column (0).
func ComputeMonthlySummaryStats(profiles []Profile, entries []Entry, from, to time.Time, hoursPerDay float64, expectedDays int) SummaryStats {
	completion := ComputeCompletion(profiles, entries, from, to)

	total := 0.0
	typeHours := make(map[ActivityType]float64)
	projectHours := make(map[string]float64)
	for _, e := range entries {
		if !datex.Between(e.Day, from, to) {
			continue
		}
		total += e.Hours
		typeHours[e.Type] += e.Hours
		if e.Project != "" {
			projectHours[e.Project] += e.Hours
		}
	}

	byType := make([]TypeShare, 0, len(typeHours))
	for t, h := range typeHours {
		byType = append(byType, TypeShare{Type: t, Hours: Round1(h), Percent: percentOf(h, total)})
	}
	sort.Slice(byType, func(i, j int) bool {
		if byType[i].Hours != byType[j].Hours {
			return byType[i].Hours > byType[j].Hours
		}
		return byType[i].Type < byType[j].Type
	})

	byProject := make([]ProjectShare, 0, len(projectHours))
	for p, h := range projectHours {
		byProject = append(byProject, ProjectShare{Project: p, Hours: Round1(h), Percent: percentOf(h, total)})
	}
	sort.Slice(byProject, func(i, j int) bool {
		if byProject[i].Hours != byProject[j].Hours {
			return byProject[i].Hours > byProject[j].Hours
		}
		return byProject[i].Project < byProject[j].Project
	})

	var below []CompletionRow
	for _, row := range completion {
		if row.FilledDays < expectedDays {
			below = append(below, row)
		}
	}

	dayEquivalents := 0.0
	if hoursPerDay > 0 {
		dayEquivalents = Round1(total / hoursPerDay)
	}

	return SummaryStats{
		TotalHours:          Round1(total),
		TotalDayEquivalents: dayEquivalents,
		ByType:              byType,
		ByProject:           byProject,
		Completion:          completion,
		BelowExpected:       below,
	}
}
