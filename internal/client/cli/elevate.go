package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var elevateCmd = &cobra.Command{
	Use:   "elevate",
	Short: "Promote your account to the manager role",
	Args:  cobra.NoArgs,
	RunE:  withApp(runElevate),
}

func runElevate(ctx context.Context, a *App, _ []string) error {
	return a.Elevate(ctx)
}

// Elevate promotes the caller to the manager role, unlocking the completion,
// summary, billing and team export commands.
func (a *App) Elevate(ctx context.Context) error {
	p, err := a.api.Elevate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is now a %s.\n", p.DisplayName, p.Role)
	return nil
}
