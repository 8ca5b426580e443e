package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var billingCmd = &cobra.Command{
	Use:   "billing <activity-id> <code>",
	Short: "Set the billing code on a saved activity (manager)",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runBilling),
}

func runBilling(ctx context.Context, a *App, args []string) error {
	return a.Billing(ctx, args[0], args[1])
}

// Billing assigns a billing code to one activity. Passing an empty code
// clears it; activity ids come from the export files.
func (a *App) Billing(ctx context.Context, activityID, code string) error {
	act, err := a.api.UpdateBillingCode(ctx, activityID, code)
	if err != nil {
		return err
	}

	if act.BillingCode == "" {
		fmt.Fprintf(a.out, "Billing code cleared on %q (%s).\n", act.Subject, act.Day)
		return nil
	}
	fmt.Fprintf(a.out, "Billing code %s set on %q (%s).\n", act.BillingCode, act.Subject, act.Day)
	return nil
}
