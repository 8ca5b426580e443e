package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"timeboard/internal/common"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session tokens locally",
	Args:  cobra.NoArgs,
	RunE:  withApp(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the locally stored session tokens",
	Args:  cobra.NoArgs,
	RunE:  withApp(runLogout),
}

func runLogin(ctx context.Context, a *App, _ []string) error {
	return a.Login(ctx)
}

func runLogout(_ context.Context, a *App, _ []string) error {
	return a.Logout()
}

// Login prompts the user for a username and password and authenticates
// against the server. On success the token pair is cached on disk, so later
// invocations stay logged in.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Logout removes the cached token pair. The server keeps no access-token
// state, so dropping the cache is all a logout needs.
func (a *App) Logout() error {
	if err := a.api.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
