package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/migrations"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/catalogs"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/pages"
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

// Catalogs returns a catalogs.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Catalogs(db dbx.DBTX) catalogs.Repository {
	return catalogs.NewSQLRepository(db, dbconn.RebindFor(m.driver))
}

// Pages returns a pages.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Pages(db dbx.DBTX) pages.Repository {
	return pages.NewSQLRepository(db, dbconn.RebindFor(m.driver))
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations, runs them
// against the provided database connection, and then applies the
// author-column soft migration on top of whatever schema version goose
// left behind.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	dialect, dir := "sqlite3", "sqlite"
	if m.driver == dbconn.DriverPostgres {
		dialect, dir = "pgx", "postgres"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return err
	}

	return EnsureAuthorColumn(ctx, db, m.driver)
}
