package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timecli",
	Short: "timecli is a terminal client for timeboard timesheets",
	Long: `timecli talks to a timeboard server: describe a working day in free
text, review the time entries the server proposes, and confirm to save them.
Managers can additionally check team completion, monthly summaries, billing
codes, and exports.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// The config flags are declared here only so cobra accepts them on any
	// command; their values are read by config.LoadConfig, which scans
	// os.Args itself.
	pf := rootCmd.PersistentFlags()
	pf.StringP("server", "a", "", "server base URL")
	pf.IntP("timeout", "t", 0, "request timeout in seconds")
	pf.StringP("data-dir", "d", "", "client data directory")
	pf.StringP("config", "c", "", "path to a JSON config file")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(elevateCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(draftsCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(exportCmd)
}
