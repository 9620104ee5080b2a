package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
)

// EnsureAuthorColumn upgrades a pages table that predates author tracking.
// It runs on every startup and is idempotent:
//
//  1. probe the schema for an author column, add a nullable TEXT column if
//     it is missing
//  2. backfill NULL and empty authors with the "unknown" placeholder
//
// The backfill runs unconditionally so rows written by an old service
// version between deployments are also repaired. It sits outside goose
// versioning on purpose: a database restored from an old backup is ahead
// of no migration, and the probe handles it regardless of what
// goose_db_version says.
func EnsureAuthorColumn(ctx context.Context, db *sql.DB, driver dbconn.Driver) error {
	exists, err := authorColumnExists(ctx, db, driver)
	if err != nil {
		return fmt.Errorf("author column probe: %w", err)
	}

	if !exists {
		if _, err := db.ExecContext(ctx, `ALTER TABLE pages ADD COLUMN author TEXT`); err != nil {
			return fmt.Errorf("add author column: %w", err)
		}
	}

	backfill := fmt.Sprintf(
		`UPDATE pages SET author = '%s' WHERE author IS NULL OR author = ''`,
		common.UnknownAuthor)
	if _, err := db.ExecContext(ctx, backfill); err != nil {
		return fmt.Errorf("backfill author column: %w", err)
	}

	return nil
}

func authorColumnExists(ctx context.Context, db *sql.DB, driver dbconn.Driver) (bool, error) {
	var query string
	switch driver {
	case dbconn.DriverPostgres:
		query = `SELECT COUNT(*) FROM information_schema.columns
		         WHERE table_name = 'pages' AND column_name = 'author'`
	default:
		query = `SELECT COUNT(*) FROM pragma_table_info('pages')
		         WHERE name = 'author'`
	}

	var n int
	if err := db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
