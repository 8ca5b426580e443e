// Package api is the HTTP client for the timeboard API. It carries the
// bearer token on every request, transparently refreshes an expired access
// token once per call, and persists the token pair between invocations so
// one-shot CLI commands stay logged in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"timeboard/internal/client/config"
	"timeboard/internal/common"
)

// tokenCacheFile is the name of the token cache inside the client data dir.
const tokenCacheFile = "tokens.json"

// Client talks to the timeboard HTTP API.
type Client struct {
	baseURL   string
	http      *http.Client
	tokenPath string

	accessToken  string
	refreshToken string
}

// New builds a Client from the CLI configuration and loads any cached
// token pair, so a previous login carries over.
func New(cfg *config.Config) (*Client, error) {
	dataDir, err := cfg.DataDirPath()
	if err != nil {
		return nil, err
	}

	tokenPath := filepath.Join(dataDir, tokenCacheFile)
	tp, err := loadTokens(tokenPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.ServerURL, "/"),
		http:         &http.Client{Timeout: cfg.RequestTimeout},
		tokenPath:    tokenPath,
		accessToken:  tp.AccessToken,
		refreshToken: tp.RefreshToken,
	}, nil
}

// IsLoggedIn reports whether the client holds an access token. It says
// nothing about the token still being accepted by the server.
func (c *Client) IsLoggedIn() bool {
	return c.accessToken != ""
}

// send performs one HTTP round trip and returns the raw status and body.
// A transport-level failure maps to ErrUnavailable.
func (c *Client) send(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("error encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// doRaw sends a request and, when the server reports an expired access
// token, refreshes the pair once and retries. Token rotation on the server
// makes the old refresh token single-use, so only one retry is attempted.
func (c *Client) doRaw(ctx context.Context, method, path string, in any) (int, []byte, error) {
	status, body, err := c.send(ctx, method, path, in)
	if err != nil {
		return 0, nil, err
	}

	if status == http.StatusUnauthorized && c.refreshToken != "" &&
		errorMessage(body) == common.ErrTokenExpired.Error() {
		if err := c.refresh(ctx); err != nil {
			return 0, nil, err
		}
		return c.send(ctx, method, path, in)
	}

	return status, body, nil
}

// do sends a request, maps error statuses, and decodes a JSON response
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	status, body, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return mapError(status, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

// refresh exchanges the refresh token for a new pair and persists it.
func (c *Client) refresh(ctx context.Context) error {
	req := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: c.refreshToken}

	status, body, err := c.send(ctx, http.MethodPost, "/api/v1/auth/refresh", req)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return mapError(status, body)
	}

	var tp TokenPair
	if err := json.Unmarshal(body, &tp); err != nil {
		return fmt.Errorf("error decoding refresh response: %w", err)
	}
	return c.setTokens(tp)
}

// setTokens stores the pair in memory and in the on-disk cache.
func (c *Client) setTokens(tp TokenPair) error {
	c.accessToken = tp.AccessToken
	c.refreshToken = tp.RefreshToken
	return saveTokens(c.tokenPath, tp)
}

// errorMessage extracts the "error" field from an API error body, or ""
// when the body is not the standard error shape.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}

// mapError converts an API error response into a client error. Auth
// failures and server-side outages map to sentinels the CLI can branch on;
// everything else surfaces the server's message.
func mapError(status int, body []byte) error {
	msg := errorMessage(body)
	if msg == "" {
		msg = strings.ToLower(http.StatusText(status))
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	default:
		return fmt.Errorf("request rejected: %s", msg)
	}
}
