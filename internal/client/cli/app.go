package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"timeboard/internal/client/api"
	"timeboard/internal/client/config"
	"timeboard/internal/client/drafts"
	"timeboard/internal/timesheet"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// apiClient is the part of api.Client the commands use.
type apiClient interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username string, password string) (*api.RegisterResult, error)
	Login(ctx context.Context, username string, password string) error
	Logout() error
	IsLoggedIn() bool
	GetProfile(ctx context.Context) (*api.Profile, error)
	CompleteProfile(ctx context.Context, displayName string) (*api.Profile, error)
	Elevate(ctx context.Context) (*api.Profile, error)
	MonthView(ctx context.Context, month string) (*api.MonthView, error)
	SaveDay(ctx context.Context, day string, rows []timesheet.Row) (*api.SaveDayResult, error)
	ProposeRows(ctx context.Context, text string) ([]timesheet.Row, error)
	UpdateBillingCode(ctx context.Context, activityID string, code string) (*api.Activity, error)
	TeamCompletion(ctx context.Context, from string, to string) ([]timesheet.CompletionRow, error)
	MonthlySummary(ctx context.Context, month string) (*timesheet.SummaryStats, error)
	DownloadExport(ctx context.Context, month string, format string, userID string) ([]byte, error)
	ArchiveExport(ctx context.Context, month string, userID string) (string, error)
}

// App carries the dependencies of one command invocation.
type App struct {
	config *config.Config
	api    apiClient
	drafts drafts.Repository
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func newApp(ctx context.Context) (*App, error) {

	cfg := config.LoadConfig()

	apiClient, err := api.New(cfg)
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.DataDirPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	db, err := drafts.Open(ctx, filepath.Join(dataDir, "drafts.db"))
	if err != nil {
		return nil, fmt.Errorf("error initializing drafts database: %w", err)
	}

	return &App{
		config: cfg,
		api:    apiClient,
		drafts: drafts.NewSQLiteRepository(db),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// withApp builds the App for one command invocation and tears it down after.
func withApp(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd.Context(), a, args)
	}
}
