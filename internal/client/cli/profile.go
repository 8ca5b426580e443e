package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileName string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile, or complete it with --name",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProfile),
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "display name to set (completes the profile)")
}

func runProfile(ctx context.Context, a *App, _ []string) error {
	return a.Profile(ctx, profileName)
}

// Profile shows the caller's profile. With a non-empty displayName it first
// completes the profile; a fresh account cannot use the timesheet before that.
func (a *App) Profile(ctx context.Context, displayName string) error {
	if displayName != "" {
		p, err := a.api.CompleteProfile(ctx, displayName)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Profile completed: %s (%s)\n", p.DisplayName, p.Role)
		return nil
	}

	p, err := a.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", p.DisplayName, p.Role)
	return nil
}
