package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"timeboard/internal/common"
	"timeboard/internal/datex"
	"timeboard/internal/server/models"
	"timeboard/internal/timesheet"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type statusResponse struct {
	Status string `json:"status"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type profileRequest struct {
	DisplayName string `json:"display_name"`
}

type profileResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type activityResponse struct {
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

type monthResponse struct {
	Month      string              `json:"month"`
	Cells      []timesheet.DayCell `json:"cells"`
	Activities []activityResponse  `json:"activities"`
}

type saveDayRequest struct {
	Rows []timesheet.Row `json:"rows"`
}

type saveDayResponse struct {
	Day        string             `json:"day"`
	Activities []activityResponse `json:"activities"`
}

type assistRequest struct {
	Text string `json:"text"`
}

type assistResponse struct {
	Rows []timesheet.Row `json:"rows"`
}

type billingCodeRequest struct {
	BillingCode string `json:"billing_code"`
}

type completionResponse struct {
	Rows []timesheet.CompletionRow `json:"rows"`
}

type archiveResponse struct {
	URL string `json:"url"`
}

func toProfileResponse(p *models.Profile) profileResponse {
	return profileResponse{UserID: p.UserID, DisplayName: p.DisplayName, Role: p.Role}
}

func toActivityResponse(a *models.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Day:         datex.FormatDay(a.Day),
		Ticket:      a.Ticket,
		Subject:     a.Subject,
		Project:     a.Project,
		Hours:       a.Hours,
		Type:        string(a.Type),
		BillingCode: a.BillingCode,
	}
}

func toActivityResponses(acts []*models.Activity) []activityResponse {
	out := make([]activityResponse, len(acts))
	for i, a := range acts {
		out[i] = toActivityResponse(a)
	}
	return out
}

// decodeJSON reads the request body into v; a body that does not parse is a
// validation error, not an internal one.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body", common.ErrorValidation)
	}
	return nil
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", user.UserName)
	writeJSON(w, http.StatusCreated, registerResponse{ID: user.ID, Username: user.UserName})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	pair, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	pair, err := s.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.GetProfile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

func (s *Server) handleCompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	profile, err := s.users.CompleteProfile(r.Context(), userIDFromContext(r.Context()), req.DisplayName)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(profile))
}

func (s *Server) handleElevateRole(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.ElevateRole(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "role elevated", "user_id", profile.UserID)
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

func (s *Server) handleMonthView(w http.ResponseWriter, r *http.Request) {
	data, err := s.timesheets.MonthView(r.Context(), userIDFromContext(r.Context()), r.PathValue("month"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, monthResponse{
		Month:      fmt.Sprintf("%04d-%02d", data.Year, int(data.Month)),
		Cells:      data.Cells,
		Activities: toActivityResponses(data.Activities),
	})
}

func (s *Server) handleSaveDay(w http.ResponseWriter, r *http.Request) {
	var req saveDayRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	day := r.PathValue("day")
	items, err := s.timesheets.SaveDay(r.Context(), userIDFromContext(r.Context()), day, req.Rows)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, saveDayResponse{Day: day, Activities: toActivityResponses(items)})
}

func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	rows, err := s.assists.ProposeRows(r.Context(), req.Text)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, assistResponse{Rows: rows})
}

func (s *Server) handleUpdateBillingCode(w http.ResponseWriter, r *http.Request) {
	var req billingCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	activity, err := s.timesheets.UpdateBillingCode(r.Context(), r.PathValue("id"), req.BillingCode)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

func (s *Server) handleTeamCompletion(w http.ResponseWriter, r *http.Request) {
	rows, err := s.reports.TeamCompletion(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, completionResponse{Rows: rows})
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	stats, err := s.reports.MonthlySummary(r.Context(), r.PathValue("month"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleExportDownload serves GET /api/v1/export/{month}.csv and .xlsx. The
// extension cannot be a mux wildcard, so the handler splits it off itself.
func (s *Server) handleExportDownload(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	userID := r.URL.Query().Get("user")

	var (
		data        []byte
		err         error
		contentType string
	)
	switch {
	case strings.HasSuffix(file, ".csv"):
		data, err = s.exports.BuildCSV(r.Context(), strings.TrimSuffix(file, ".csv"), userID)
		contentType = csvContentType
	case strings.HasSuffix(file, ".xlsx"):
		data, err = s.exports.BuildXLSX(r.Context(), strings.TrimSuffix(file, ".xlsx"), userID)
		contentType = xlsxContentType
	default:
		s.writeError(r.Context(), w, fmt.Errorf("%w: unknown export format", common.ErrorNotFound))
		return
	}
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "timesheet-"+file))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleArchiveExport(w http.ResponseWriter, r *http.Request) {
	url, err := s.exports.ArchiveExport(r.Context(), r.PathValue("month"), r.URL.Query().Get("user"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "export archived", "month", r.PathValue("month"))
	writeJSON(w, http.StatusOK, archiveResponse{URL: url})
}
