package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"timeboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string              HTTP bind address (e.g., ":8080")
//	-d string              PostgreSQL DSN
//	-s string              JWT HMAC secret key
//	-t int                 access token validity, minutes
//	-r int                 refresh token validity, minutes
//	-ceiling float         daily billable-hours ceiling
//	-hours-per-day float   hours per working day (day-equivalent exports)
//	-expected-days int     expected working days per month (0 = derive)
//	-default-type string   fallback activity category
//	-managers string       comma-separated manager allow-list
//	-charge-unit string    export charge unit: "hours" or "days"
//	-genai-key string      Gemini API key for the assist endpoint
//	-genai-model string    Gemini model name
//	-u string              S3 root user
//	-p string              S3 root password
//	-b string              S3 bucket name
//	-g string              S3 region
//	-e string              S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Token validity flags are accepted as integers in minutes and then
//     converted to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-r",
		"-ceiling", "-hours-per-day", "-expected-days", "-default-type",
		"-managers", "-charge-unit", "-genai-key", "-genai-model",
		"-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.Float64Var(&config.DailyCeiling, "ceiling", config.DailyCeiling, "daily billable-hours ceiling")
	fs.Float64Var(&config.HoursPerDay, "hours-per-day", config.HoursPerDay, "hours per working day")
	fs.IntVar(&config.ExpectedWorkingDays, "expected-days", config.ExpectedWorkingDays, "expected working days per month (0 = derive from month)")
	fs.StringVar(&config.DefaultActivityType, "default-type", config.DefaultActivityType, "fallback activity category")
	managers := fs.String("managers", strings.Join(config.ManagerAllowList, ","), "comma-separated manager allow-list")
	fs.StringVar(&config.ExportChargeUnit, "charge-unit", config.ExportChargeUnit, "export charge unit: hours or days")
	fs.StringVar(&config.GenAIAPIKey, "genai-key", config.GenAIAPIKey, "Gemini API key")
	fs.StringVar(&config.GenAIModel, "genai-model", config.GenAIModel, "Gemini model name")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute

	if *managers != "" {
		parts := strings.Split(*managers, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		config.ManagerAllowList = list
	}
}
