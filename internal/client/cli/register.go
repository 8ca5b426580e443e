package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"timeboard/internal/common"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Args:  cobra.NoArgs,
	RunE:  withApp(runRegister),
}

func runRegister(ctx context.Context, a *App, _ []string) error {
	return a.Register(ctx)
}

// Register prompts the user for a username and password and creates a new
// account. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Register(ctx, userName, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created. Log in with 'timecli login', then set your display name with 'timecli profile --name \"Your Name\"'.\n", res.Username)
	return nil
}
