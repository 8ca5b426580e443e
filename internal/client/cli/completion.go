package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	completionFrom string
	completionTo   string
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Show who on the team has filled which days (manager)",
	Args:  cobra.NoArgs,
	RunE:  withApp(runCompletion),
}

func init() {
	completionCmd.Flags().StringVar(&completionFrom, "from", "", "first day YYYY-MM-DD (default: first of this month)")
	completionCmd.Flags().StringVar(&completionTo, "to", "", "last day YYYY-MM-DD (default: today)")
}

func runCompletion(ctx context.Context, a *App, _ []string) error {
	return a.Completion(ctx, completionFrom, completionTo)
}

// Completion shows each team member's filled-day count and hour total over a
// day range. An empty range defaults to the current month up to today.
func (a *App) Completion(ctx context.Context, from, to string) error {
	now := time.Now()
	if from == "" {
		from = now.Format("2006-01") + "-01"
	}
	if to == "" {
		to = now.Format("2006-01-02")
	}

	rows, err := a.api.TeamCompletion(ctx, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Team completion %s .. %s\n", from, to)
	renderCompletion(a.out, rows)
	return nil
}
