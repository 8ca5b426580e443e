package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timeboard/internal/dbx"
)

// ErrNoDraft is returned by Get when no draft exists for the day.
var ErrNoDraft = errors.New("no draft for this day")

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the draft for a day and bumps its timestamp. The timestamp
// is supplied by the caller side so it round-trips through the driver as a
// time.Time.
func (r *SQLiteRepository) Save(ctx context.Context, day, body string) error {
	query := `INSERT INTO drafts (day, body, updated_at)
			values (?, ?, ?)
			ON CONFLICT(day) DO UPDATE SET body = excluded.body,
				updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, day, body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

// Get returns the draft for a single day.
func (r *SQLiteRepository) Get(ctx context.Context, day string) (*Draft, error) {
	query := `select day, body, updated_at from drafts where day=?`
	row := r.db.QueryRowContext(ctx, query, day)

	d := &Draft{}
	if err := row.Scan(&d.Day, &d.Body, &d.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return d, nil
}

// List returns all drafts, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]Draft, error) {
	query := `select day, body, updated_at from drafts order by updated_at desc, day desc`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	var result []Draft
	for rows.Next() {
		var item Draft
		if err := rows.Scan(&item.Day, &item.Body, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the draft for a day. Missing drafts are not an error: the
// caller clears drafts after a save whether or not one was written.
func (r *SQLiteRepository) Delete(ctx context.Context, day string) error {
	query := `delete from drafts where day=?`
	if _, err := r.db.ExecContext(ctx, query, day); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
