package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"timeboard/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusForError maps the sentinel errors of internal/common onto HTTP status
// codes. Anything unmatched is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrAssistNotConfigured),
		errors.Is(err, common.ErrArchiveNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, common.ErrAssistUnavailable),
		errors.Is(err, common.ErrAssistBadResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as {"error": "..."}. Internal errors are logged and
// the body carries a generic message instead of the wrapped cause.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(ctx, err.Error())
		msg = common.ErrorInternal.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
