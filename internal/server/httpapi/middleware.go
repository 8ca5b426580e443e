package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"timeboard/internal/common"
	"timeboard/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// userIDFromContext returns the authenticated user ID stored by withAuth,
// or "" outside an authenticated request.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// withAuth resolves the bearer access token and stores the user ID in the
// request context. Requests without a usable token never reach the handler.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			s.writeError(r.Context(), w, fmt.Errorf("%w: missing token", common.ErrorUnauthorized))
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)
		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if !errors.Is(err, common.ErrTokenExpired) {
				err = common.ErrInvalidToken
			}
			s.writeError(r.Context(), w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireManager loads the caller's profile and rejects non-managers. It runs
// after withAuth, so the user ID is already in the context. A user who never
// completed their profile is treated like a member.
func (s *Server) requireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.users.GetProfile(r.Context(), userIDFromContext(r.Context()))
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				err = fmt.Errorf("%w: manager role required", common.ErrorForbidden)
			}
			s.writeError(r.Context(), w, err)
			return
		}
		if !profile.IsManager() {
			s.writeError(r.Context(), w, fmt.Errorf("%w: manager role required", common.ErrorForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}
