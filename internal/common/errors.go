// Package common defines shared constants and sentinel errors used across
// client and server layers of timeboard. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors. Wrap with fmt.Errorf("%w: <first failing check>", ...)
	// so the transport can surface the message while errors.Is still matches.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Assist (text-completion) errors. Kept distinct from ErrorInternal so the
	// transport can report a misconfigured or unreachable completion backend
	// instead of a generic failure.
	ErrAssistNotConfigured = errors.New("assist service not configured")
	ErrAssistUnavailable   = errors.New("assist service unavailable")
	ErrAssistBadResponse   = errors.New("assist service returned no usable rows")

	// Export archiving needs an object store; deployments without one get
	// this instead of a generic failure.
	ErrArchiveNotConfigured = errors.New("archive storage not configured")
)
