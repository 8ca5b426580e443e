package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from environment variables onto the
// provided Config. An optional .env file in the working directory is loaded
// first; a missing file is not an error, the process environment then stands
// on its own.
//
// All variables are prefixed with TIMEBOARD_. Duration values use Go duration
// syntax ("15m", "720h"); the manager allow-list is a comma-separated list of
// usernames. GEMINI_API_KEY is honoured as a fallback for the assist key.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString(&config.HTTPAddr, "TIMEBOARD_HTTP_ADDR")
	setString(&config.DatabaseDSN, "TIMEBOARD_DATABASE_DSN")
	setString(&config.SecretKey, "TIMEBOARD_SECRET_KEY")
	setDuration(&config.AccessTokenValidityDuration, "TIMEBOARD_ACCESS_TOKEN_VALIDITY")
	setDuration(&config.RefreshTokenValidityDuration, "TIMEBOARD_REFRESH_TOKEN_VALIDITY")
	setFloat(&config.DailyCeiling, "TIMEBOARD_DAILY_CEILING")
	setFloat(&config.HoursPerDay, "TIMEBOARD_HOURS_PER_DAY")
	setInt(&config.ExpectedWorkingDays, "TIMEBOARD_EXPECTED_WORKING_DAYS")
	setString(&config.DefaultActivityType, "TIMEBOARD_DEFAULT_ACTIVITY_TYPE")
	setList(&config.ManagerAllowList, "TIMEBOARD_MANAGER_ALLOW_LIST")
	setString(&config.ExportChargeUnit, "TIMEBOARD_EXPORT_CHARGE_UNIT")
	setString(&config.GenAIAPIKey, "GEMINI_API_KEY")
	setString(&config.GenAIAPIKey, "TIMEBOARD_GENAI_API_KEY")
	setString(&config.GenAIModel, "TIMEBOARD_GENAI_MODEL")
	setString(&config.S3RootUser, "TIMEBOARD_S3_ROOT_USER")
	setString(&config.S3RootPassword, "TIMEBOARD_S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "TIMEBOARD_S3_BUCKET")
	setString(&config.S3Region, "TIMEBOARD_S3_REGION")
	setString(&config.S3BaseEndpoint, "TIMEBOARD_S3_BASE_ENDPOINT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func setFloat(dst *float64, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		panic(err)
	}
	*dst = f
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func setList(dst *[]string, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*dst = out
}
