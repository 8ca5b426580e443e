// Package drafts keeps the free-text day descriptions a user typed but has
// not saved to the server yet. A draft is written before the assist call
// goes out and deleted after a successful save, so a network failure or an
// abandoned session never loses input.
package drafts

import (
	"context"
	"time"
)

// Draft is one unsaved day description, keyed by day ("YYYY-MM-DD").
type Draft struct {
	Day       string
	Body      string
	UpdatedAt time.Time
}

// Repository stores drafts locally.
type Repository interface {
	// Save upserts the draft for a day.
	Save(ctx context.Context, day, body string) error
	// Get returns the draft for a day, or ErrNoDraft.
	Get(ctx context.Context, day string) (*Draft, error)
	// List returns all drafts, newest first.
	List(ctx context.Context) ([]Draft, error)
	// Delete removes the draft for a day. Deleting a missing draft is fine.
	Delete(ctx context.Context, day string) error
}
