// Package users stores the account rows behind registration and login.
package users

import (
	"context"

	"timeboard/internal/server/models"
)

// Repository persists user accounts. Lookups that match nothing return
// common.ErrorNotFound; creating a duplicate username returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
