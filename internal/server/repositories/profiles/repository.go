package profiles

import (
	"context"

	"timeboard/internal/server/models"
)

type Repository interface {
	// Create stores the profile-completion row for a user. A second
	// completion for the same user yields common.ErrorAlreadyExists.
	Create(ctx context.Context, profile *models.Profile) error

	// GetByUserID returns the profile for a user, or common.ErrorNotFound.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// ListAll returns every profile ordered by display name, for the
	// team-wide views.
	ListAll(ctx context.Context) ([]*models.Profile, error)

	// UpdateRole sets the role column. Callers gate this behind the
	// elevation allow-list.
	UpdateRole(ctx context.Context, userID string, role string) error
}
