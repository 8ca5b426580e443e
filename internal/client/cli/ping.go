package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the server is reachable",
	Args:  cobra.NoArgs,
	RunE:  withApp(runPing),
}

func runPing(ctx context.Context, a *App, _ []string) error {
	return a.Ping(ctx)
}

// Ping checks server connectivity without touching any account state.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is up.\n", a.config.ServerURL)
	return nil
}
