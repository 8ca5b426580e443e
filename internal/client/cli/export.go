package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportOutput  string
	exportUser    string
	exportArchive bool
)

var exportCmd = &cobra.Command{
	Use:   "export [YYYY-MM]",
	Short: "Download a month as CSV or XLSX, or archive it (manager)",
	Long: `export downloads the whole team's activities for a month as a CSV or
XLSX file. With --archive the server uploads the file to its archive store
instead and prints a time-limited download link. --user limits the export to
one member.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(runExport),
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default timesheet-<month>.<format>)")
	exportCmd.Flags().StringVar(&exportUser, "user", "", "limit the export to one member (user id)")
	exportCmd.Flags().BoolVar(&exportArchive, "archive", false, "upload to the archive store and print a download link")
}

func runExport(ctx context.Context, a *App, args []string) error {
	month := defaultMonth()
	if len(args) > 0 {
		month = args[0]
	}
	return a.Export(ctx, month, exportFormat, exportOutput, exportUser, exportArchive)
}

// Export fetches a month's export. With archive set it asks the server to
// upload the file and prints the returned link; otherwise it writes the file
// locally.
func (a *App) Export(ctx context.Context, month, format, output, userID string, archive bool) error {
	if archive {
		url, err := a.api.ArchiveExport(ctx, month, userID)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, url)
		return nil
	}

	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("unknown format %q (want csv or xlsx)", format)
	}

	data, err := a.api.DownloadExport(ctx, month, format, userID)
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("timesheet-%s.%s", month, format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}

	fmt.Fprintf(a.out, "Wrote %s (%d bytes).\n", output, len(data))
	return nil
}
