package config

import (
	"encoding/json"
	"os"
	"time"

	"timeboard/internal/flagx"
	"timeboard/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for token lifetime fields, which allows parsing both
// string values such as "15m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its non-empty fields are copied into the runtime
// Config struct, so a partial file overrides only what it names.
type JsonConfig struct {
	HTTPAddr                     string         `json:"http_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	DailyCeiling                 float64        `json:"daily_ceiling"`
	HoursPerDay                  float64        `json:"hours_per_day"`
	ExpectedWorkingDays          int            `json:"expected_working_days"`
	DefaultActivityType          string         `json:"default_activity_type"`
	ManagerAllowList             []string       `json:"manager_allow_list"`
	ExportChargeUnit             string         `json:"export_charge_unit"`
	GenAIAPIKey                  string         `json:"genai_api_key"`
	GenAIModel                   string         `json:"genai_model"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a config file that was asked
// for but cannot be used is a startup error.
//
// Only fields present (non-zero) in the file override the current Config
// values, so the JSON overlay composes with defaults and later overlays.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.HTTPAddr != "" {
		config.HTTPAddr = c.HTTPAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	}
	if c.DailyCeiling != 0 {
		config.DailyCeiling = c.DailyCeiling
	}
	if c.HoursPerDay != 0 {
		config.HoursPerDay = c.HoursPerDay
	}
	if c.ExpectedWorkingDays != 0 {
		config.ExpectedWorkingDays = c.ExpectedWorkingDays
	}
	if c.DefaultActivityType != "" {
		config.DefaultActivityType = c.DefaultActivityType
	}
	if c.ManagerAllowList != nil {
		config.ManagerAllowList = c.ManagerAllowList
	}
	if c.ExportChargeUnit != "" {
		config.ExportChargeUnit = c.ExportChargeUnit
	}
	if c.GenAIAPIKey != "" {
		config.GenAIAPIKey = c.GenAIAPIKey
	}
	if c.GenAIModel != "" {
		config.GenAIModel = c.GenAIModel
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
