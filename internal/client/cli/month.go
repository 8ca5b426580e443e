package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timeboard/internal/timesheet"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show your timesheet for a month, one line per day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withApp(runMonth),
}

func runMonth(ctx context.Context, a *App, args []string) error {
	month := defaultMonth()
	if len(args) > 0 {
		month = args[0]
	}
	return a.Month(ctx, month)
}

func defaultMonth() string {
	return time.Now().Format("2006-01")
}

// Month renders the month view: every calendar day with its status, hours
// and entry count, plus a total over the filled days.
func (a *App) Month(ctx context.Context, month string) error {
	mv, err := a.api.MonthView(ctx, month)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, mv.Month)
	fmt.Fprintln(a.out, strings.Repeat("-", 38))

	var total float64
	for _, c := range mv.Cells {
		switch c.Status {
		case timesheet.StatusWeekend:
			fmt.Fprintf(a.out, "%-12s %s\n", c.Day, "weekend")
		case timesheet.StatusEmpty:
			fmt.Fprintf(a.out, "%-12s %s\n", c.Day, "-")
		default:
			fmt.Fprintf(a.out, "%-12s %-9s %d entries\n", c.Day, formatHours(c.TotalHours), c.LinesCount)
			total += c.TotalHours
		}
	}

	fmt.Fprintln(a.out, strings.Repeat("-", 38))
	fmt.Fprintf(a.out, "%-12s %s\n", "Total", formatHours(total))
	return nil
}
