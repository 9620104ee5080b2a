// Package repomanager provides a concrete RepositoryManager for the identity
// service, wiring together repository constructors and database migrations
// (via goose) for the active driver.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/identity/migrations"
	"github.com/AaronBlvde/wiki-platform/internal/identity/repositories/users"
)

// SQLRepositoryManager vends SQL-backed repositories. The driver decides the
// goose dialect, the migration directory, and placeholder rebinding.
type SQLRepositoryManager struct {
	driver dbconn.Driver
}

// NewSQLRepositoryManager constructs a RepositoryManager for the given driver.
func NewSQLRepositoryManager(driver dbconn.Driver) *SQLRepositoryManager {
	return &SQLRepositoryManager{driver: driver}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, dbconn.RebindFor(m.driver))
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	dialect, dir := "sqlite3", "sqlite"
	if m.driver == dbconn.DriverPostgres {
		dialect, dir = "pgx", "postgres"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dir)
}
