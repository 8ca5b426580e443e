package api

import (
	"context"
	"net/http"
	"net/url"

	"timeboard/internal/timesheet"
)

// RegisterResult identifies a freshly created account.
type RegisterResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Profile is a team member's directory record.
type Profile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Activity is one persisted time entry as the API returns it.
type Activity struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Day         string  `json:"day"`
	Ticket      string  `json:"ticket,omitempty"`
	Subject     string  `json:"subject"`
	Project     string  `json:"project,omitempty"`
	Hours       float64 `json:"hours"`
	Type        string  `json:"type"`
	BillingCode string  `json:"billing_code,omitempty"`
}

// MonthView is the per-day calendar plus the month's activities.
type MonthView struct {
	Month      string              `json:"month"`
	Cells      []timesheet.DayCell `json:"cells"`
	Activities []Activity          `json:"activities"`
}

// SaveDayResult is the persisted state of a day after a save.
type SaveDayResult struct {
	Day        string     `json:"day"`
	Activities []Activity `json:"activities"`
}

// Ping checks that the server is up.
func (c *Client) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/ping", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	res := &RegisterResult{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Login authenticates and caches the issued token pair.
func (c *Client) Login(ctx context.Context, username, password string) error {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var tp TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &tp); err != nil {
		return err
	}
	return c.setTokens(tp)
}

// Logout forgets the session locally. The server keeps no access-token
// state, so dropping the cached pair is all there is to it.
func (c *Client) Logout() error {
	c.accessToken = ""
	c.refreshToken = ""
	return dropTokens(c.tokenPath)
}

// GetProfile returns the caller's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	p := &Profile{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/profile", nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CompleteProfile sets the caller's display name, creating the profile.
func (c *Client) CompleteProfile(ctx context.Context, displayName string) (*Profile, error) {
	req := struct {
		DisplayName string `json:"display_name"`
	}{DisplayName: displayName}

	p := &Profile{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/profile", req, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Elevate promotes the caller to the manager role, if allowed.
func (c *Client) Elevate(ctx context.Context) (*Profile, error) {
	p := &Profile{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/profile/elevate", nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

// MonthView fetches the caller's calendar for a month ("YYYY-MM").
func (c *Client) MonthView(ctx context.Context, month string) (*MonthView, error) {
	mv := &MonthView{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/timesheet/"+url.PathEscape(month), nil, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// SaveDay replaces the caller's entries for one day ("YYYY-MM-DD").
func (c *Client) SaveDay(ctx context.Context, day string, rows []timesheet.Row) (*SaveDayResult, error) {
	req := struct {
		Rows []timesheet.Row `json:"rows"`
	}{Rows: rows}

	res := &SaveDayResult{}
	if err := c.do(ctx, http.MethodPut, "/api/v1/timesheet/days/"+url.PathEscape(day), req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ProposeRows sends free text to the assist endpoint and returns the
// proposed rows. Nothing is persisted server-side.
func (c *Client) ProposeRows(ctx context.Context, text string) ([]timesheet.Row, error) {
	req := struct {
		Text string `json:"text"`
	}{Text: text}

	var resp struct {
		Rows []timesheet.Row `json:"rows"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/assist", req, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

// UpdateBillingCode sets the billing code on one activity (manager only).
func (c *Client) UpdateBillingCode(ctx context.Context, activityID, code string) (*Activity, error) {
	req := struct {
		BillingCode string `json:"billing_code"`
	}{BillingCode: code}

	a := &Activity{}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/activities/"+url.PathEscape(activityID)+"/billing-code", req, a); err != nil {
		return nil, err
	}
	return a, nil
}

// TeamCompletion returns per-member fill statistics for a date range
// (manager only). Dates are "YYYY-MM-DD".
func (c *Client) TeamCompletion(ctx context.Context, from, to string) ([]timesheet.CompletionRow, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)

	var resp struct {
		Rows []timesheet.CompletionRow `json:"rows"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/team/completion?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

// MonthlySummary returns the team's aggregate statistics for a month
// (manager only).
func (c *Client) MonthlySummary(ctx context.Context, month string) (*timesheet.SummaryStats, error) {
	stats := &timesheet.SummaryStats{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/team/summary/"+url.PathEscape(month), nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// DownloadExport fetches a month export in the given format ("csv" or
// "xlsx") and returns the file bytes. An empty userID exports the whole
// team (manager only).
func (c *Client) DownloadExport(ctx context.Context, month, format, userID string) ([]byte, error) {
	path := "/api/v1/export/" + url.PathEscape(month+"."+format)
	if userID != "" {
		q := url.Values{}
		q.Set("user", userID)
		path += "?" + q.Encode()
	}

	status, body, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, mapError(status, body)
	}
	return body, nil
}

// ArchiveExport uploads a month export to the server's object store and
// returns a presigned download link (manager only).
func (c *Client) ArchiveExport(ctx context.Context, month, userID string) (string, error) {
	path := "/api/v1/export/" + url.PathEscape(month) + "/archive"
	if userID != "" {
		q := url.Values{}
		q.Set("user", userID)
		path += "?" + q.Encode()
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
