package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List day descriptions that were never saved to the server",
	Args:  cobra.NoArgs,
	RunE:  withApp(runDrafts),
}

func runDrafts(ctx context.Context, a *App, _ []string) error {
	return a.Drafts(ctx)
}

// Drafts lists locally kept day descriptions, newest first. A draft survives
// until its day is saved to the server, so this doubles as a to-do list.
func (a *App) Drafts(ctx context.Context) error {
	items, err := a.drafts.List(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No drafts.")
		return nil
	}

	for _, d := range items {
		fmt.Fprintf(a.out, "%-12s %-17s %s\n", d.Day, d.UpdatedAt.Local().Format("2006-01-02 15:04"), firstLine(d.Body))
	}
	return nil
}
