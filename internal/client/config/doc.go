// Package config loads runtime configuration for the timecli client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or --config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a, --server string     base URL of the timeboard HTTP API
//	-t, --timeout int       request timeout (seconds)
//	-d, --data-dir string   client data directory (token cache, drafts database)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "request_timeout": "15s",
//	  "data_dir": "/home/user/.timecli"
//	}
//
// Primary API
//
//   - type Config                     — holds ServerURL, RequestTimeout and DataDir
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
