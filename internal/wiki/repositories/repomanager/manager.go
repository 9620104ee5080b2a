// Package repomanager provides a concrete RepositoryManager for the wiki
// service, wiring together repository constructors and database migrations
// (via goose) for the active driver, plus the author-column soft migration
// that upgrades schemas created before author tracking existed.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/catalogs"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/pages"
)

// RepositoryManager vends repositories bound to a DBTX and runs schema
// migrations.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Catalogs(db dbx.DBTX) catalogs.Repository
	Pages(db dbx.DBTX) pages.Repository
}
