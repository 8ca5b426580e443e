package activities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timeboard/internal/common"
	"timeboard/internal/dbx"
	"timeboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) DeleteForDay(ctx context.Context, userID string, day time.Time) error {
	query := "DELETE FROM activities WHERE user_id = $1 AND day = $2"
	if _, err := r.db.ExecContext(ctx, query, userID, day); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InsertBatch(ctx context.Context, items []*models.Activity) error {
	query := `INSERT INTO activities (user_id, day, ticket, subject, project, hours, activity_type, billing_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	for _, a := range items {
		row := r.db.QueryRowContext(ctx, query,
			a.UserID, a.Day, a.Ticket, a.Subject, a.Project, a.Hours, string(a.Type), a.BillingCode)
		if err := row.Scan(&a.ID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

const selectColumns = "id, user_id, day, ticket, subject, project, hours, activity_type, billing_code, created_at, updated_at"

func (r *PostgresRepository) ListForUserRange(ctx context.Context, userID string, from, to time.Time) ([]*models.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities
		WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day, created_at`, selectColumns)
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *PostgresRepository) ListForRange(ctx context.Context, from, to time.Time) ([]*models.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities
		WHERE day >= $1 AND day <= $2 ORDER BY day, user_id, created_at`, selectColumns)
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func scanActivities(rows *sql.Rows) ([]*models.Activity, error) {
	var result []*models.Activity
	for rows.Next() {
		var a models.Activity
		err := rows.Scan(&a.ID, &a.UserID, &a.Day, &a.Ticket, &a.Subject, &a.Project,
			&a.Hours, &a.Type, &a.BillingCode, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	query := fmt.Sprintf("SELECT %s FROM activities WHERE id = $1", selectColumns)
	var a models.Activity
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Day, &a.Ticket,
		&a.Subject, &a.Project, &a.Hours, &a.Type, &a.BillingCode, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) UpdateBillingCode(ctx context.Context, id string, code string) error {
	query := "UPDATE activities SET billing_code = $1, updated_at = now() WHERE id = $2"
	result, err := r.db.ExecContext(ctx, query, code, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
