// Package logging declares the small structured logger the server is written
// against and provides an implementation backed by log/slog.
package logging

import "context"

// Logger writes leveled, structured log records. Variadic args are
// alternating keys and values, as in log/slog:
//
//	log.Info(ctx, "day saved", "user_id", id, "day", day)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger whose records always carry the given attributes.
	With(args ...any) Logger
}
