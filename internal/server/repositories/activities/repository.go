package activities

import (
	"context"
	"time"

	"timeboard/internal/server/models"
)

type Repository interface {
	// DeleteForDay removes every activity of one user on one day. Deleting
	// an empty day is not an error; replace-day saves rely on that.
	DeleteForDay(ctx context.Context, userID string, day time.Time) error

	// InsertBatch inserts the given activities, filling in generated IDs.
	InsertBatch(ctx context.Context, items []*models.Activity) error

	// ListForUserRange returns one user's activities with day in
	// [from, to], ordered by day then creation.
	ListForUserRange(ctx context.Context, userID string, from, to time.Time) ([]*models.Activity, error)

	// ListForRange returns every user's activities with day in [from, to],
	// for the manager views and exports.
	ListForRange(ctx context.Context, from, to time.Time) ([]*models.Activity, error)

	// GetByID returns a single activity, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Activity, error)

	// UpdateBillingCode sets only the billing_code column.
	UpdateBillingCode(ctx context.Context, id string, code string) error
}
