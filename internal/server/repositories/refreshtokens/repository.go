// Package refreshtokens stores the opaque refresh tokens backing the token
// rotation flow.
package refreshtokens

import (
	"context"
	"time"

	"timeboard/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens.
type Repository interface {
	// Create stores a token for userID expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns the stored token row, or common.ErrorNotFound when the
	// token was never issued or has been rotated away.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes a token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
