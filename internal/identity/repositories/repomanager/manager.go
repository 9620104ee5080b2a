package repomanager

import (
	"context"
	"database/sql"

	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/identity/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DB or
// transaction handle and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
