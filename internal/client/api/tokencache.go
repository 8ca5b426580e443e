package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TokenPair is the access/refresh token pair issued by the server on login
// and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// loadTokens reads a cached token pair from path. A missing file is not an
// error; it yields an empty pair, meaning the user has to log in.
func loadTokens(path string) (TokenPair, error) {
	var tp TokenPair

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tp, nil
	}
	if err != nil {
		return tp, fmt.Errorf("error reading token cache: %w", err)
	}
	if err := json.Unmarshal(data, &tp); err != nil {
		return tp, fmt.Errorf("error parsing token cache %s: %w", path, err)
	}
	return tp, nil
}

// saveTokens writes the pair to path with owner-only permissions.
// The write is atomic: a temp file in the same directory is renamed over
// the target, so a crash never leaves a truncated cache behind.
func saveTokens(path string, tp TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("error creating token cache directory: %w", err)
	}

	data, err := json.MarshalIndent(tp, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling token cache: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("error writing token cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error replacing token cache: %w", err)
	}
	return nil
}

// dropTokens removes the cache file. A missing file is fine.
func dropTokens(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing token cache: %w", err)
	}
	return nil
}
