// Package httpapi exposes the timeboard services over a JSON HTTP API.
// Authentication is a bearer access token; manager-only routes additionally
// check the caller's profile role.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"timeboard/internal/logging"
	"timeboard/internal/server/models"
	"timeboard/internal/server/services"
	"timeboard/internal/timesheet"
)

// The transport depends on narrow views of the services so handler tests can
// substitute fakes.

type userService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	CompleteProfile(ctx context.Context, userID, displayName string) (*models.Profile, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	ElevateRole(ctx context.Context, userID string) (*models.Profile, error)
}

type timesheetService interface {
	MonthView(ctx context.Context, userID, month string) (*services.MonthData, error)
	SaveDay(ctx context.Context, userID, day string, rows []timesheet.Row) ([]*models.Activity, error)
	UpdateBillingCode(ctx context.Context, activityID, code string) (*models.Activity, error)
}

type reportService interface {
	TeamCompletion(ctx context.Context, from, to string) ([]timesheet.CompletionRow, error)
	MonthlySummary(ctx context.Context, month string) (*timesheet.SummaryStats, error)
}

type assistService interface {
	ProposeRows(ctx context.Context, text string) ([]timesheet.Row, error)
}

type exportService interface {
	BuildCSV(ctx context.Context, month, userID string) ([]byte, error)
	BuildXLSX(ctx context.Context, month, userID string) ([]byte, error)
	ArchiveExport(ctx context.Context, month, userID string) (string, error)
}

type Server struct {
	address    string
	logger     logging.Logger
	users      userService
	timesheets timesheetService
	reports    reportService
	assists    assistService
	exports    exportService
	jwtSecret  []byte
}

func NewServer(address string, l logging.Logger, us userService, ts timesheetService,
	rs reportService, as assistService, es exportService, secretKey string) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		users:      us,
		timesheets: ts,
		reports:    rs,
		assists:    as,
		exports:    es,
		jwtSecret:  []byte(secretKey),
	}
}

// Handler builds the route table. Method patterns keep dispatch in the mux;
// handlers only read path values.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/ping", s.handlePing)
	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/v1/auth/refresh", s.handleRefresh)

	mux.Handle("GET /api/v1/profile", s.authed(s.handleGetProfile))
	mux.Handle("POST /api/v1/profile", s.authed(s.handleCompleteProfile))
	mux.Handle("POST /api/v1/profile/elevate", s.authed(s.handleElevateRole))

	mux.Handle("GET /api/v1/timesheet/{month}", s.authed(s.handleMonthView))
	mux.Handle("PUT /api/v1/timesheet/days/{day}", s.authed(s.handleSaveDay))
	mux.Handle("POST /api/v1/assist", s.authed(s.handleAssist))

	mux.Handle("PATCH /api/v1/activities/{id}/billing-code", s.manager(s.handleUpdateBillingCode))
	mux.Handle("GET /api/v1/team/completion", s.manager(s.handleTeamCompletion))
	mux.Handle("GET /api/v1/team/summary/{month}", s.manager(s.handleMonthlySummary))
	mux.Handle("GET /api/v1/export/{file}", s.manager(s.handleExportDownload))
	mux.Handle("POST /api/v1/export/{month}/archive", s.manager(s.handleArchiveExport))

	return mux
}

func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return s.withAuth(h)
}

func (s *Server) manager(h http.HandlerFunc) http.Handler {
	return s.withAuth(s.requireManager(h))
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
