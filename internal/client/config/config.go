package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the timecli client.
//
// Fields:
//   - ServerURL: base URL of the timeboard HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DataDir: directory holding the token cache and the local drafts
//     database. Empty means ~/.timecli.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	DataDir        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DataDir = ""
}

// DataDirPath returns the directory for client-side state (token cache,
// drafts database). An explicitly configured DataDir wins; otherwise the
// directory is ~/.timecli.
func (c *Config) DataDirPath() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timecli"), nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
