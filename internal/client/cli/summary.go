package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [YYYY-MM]",
	Short: "Show the team's monthly totals and breakdowns (manager)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withApp(runSummary),
}

func runSummary(ctx context.Context, a *App, args []string) error {
	month := defaultMonth()
	if len(args) > 0 {
		month = args[0]
	}
	return a.Summary(ctx, month)
}

// Summary renders the manager dashboard for one month: team totals, per-type
// and per-project shares, and members behind on their timesheet.
func (a *App) Summary(ctx context.Context, month string) error {
	stats, err := a.api.MonthlySummary(ctx, month)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Summary for %s\n", month)
	fmt.Fprintf(a.out, "Total: %s (%.1f working days)\n", formatHours(stats.TotalHours), stats.TotalDayEquivalents)

	if len(stats.ByType) > 0 {
		fmt.Fprintln(a.out, "\nBy type:")
		for _, s := range stats.ByType {
			fmt.Fprintf(a.out, "  %-24s %-9s %3d%%\n", string(s.Type), formatHours(s.Hours), s.Percent)
		}
	}

	if len(stats.ByProject) > 0 {
		fmt.Fprintln(a.out, "\nBy project:")
		for _, s := range stats.ByProject {
			fmt.Fprintf(a.out, "  %-24s %-9s %3d%%\n", s.Project, formatHours(s.Hours), s.Percent)
		}
	}

	if len(stats.Completion) > 0 {
		fmt.Fprintln(a.out, "\nCompletion:")
		renderCompletion(a.out, stats.Completion)
	}

	if len(stats.BelowExpected) > 0 {
		fmt.Fprintln(a.out, "\nBehind on their timesheet:")
		for _, r := range stats.BelowExpected {
			fmt.Fprintf(a.out, "  %-24s %d days filled\n", r.Name, r.FilledDays)
		}
	}

	return nil
}
