package config

import (
	"flag"
	"os"
	"time"

	"timeboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a, --server string     base URL of the timeboard API (default from Config)
//	-t, --timeout int       request timeout in seconds (default from Config)
//	-d, --data-dir string   client data directory (token cache, drafts database)
//
// The long forms match the flags the cobra root command declares, so both
// spellings reach the same Config fields.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "--server",
		"-t", "--timeout",
		"-d", "--data-dir",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the timeboard API")
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "base URL of the timeboard API")
	requestTimeout := int(cfg.RequestTimeout.Seconds())
	fs.IntVar(&requestTimeout, "t", requestTimeout, "request timeout (in seconds)")
	fs.IntVar(&requestTimeout, "timeout", requestTimeout, "request timeout (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "client data directory")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "client data directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(requestTimeout) * time.Second
}
