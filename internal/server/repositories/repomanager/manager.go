// Package repomanager hands out repository instances bound to a pool or a
// transaction, so services stay independent of the storage backend.
package repomanager

import (
	"context"
	"database/sql"

	"timeboard/internal/dbx"
	"timeboard/internal/server/repositories/activities"
	"timeboard/internal/server/repositories/profiles"
	"timeboard/internal/server/repositories/refreshtokens"
	"timeboard/internal/server/repositories/users"
)

// RepositoryManager is the factory the services program against. Each method
// returns a repository running on the given handle, which may be a *sql.DB or
// an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Activities(db dbx.DBTX) activities.Repository
}
