// Package dbconn opens database/sql connections from a single
// DATABASE_URL-style string, choosing between the pgx driver and the pure-Go
// SQLite driver, and provides placeholder rebinding so repositories can
// share one query dialect.
package dbconn

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// Driver identifies a supported database/sql driver.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "pgx"
)

// ParseDatabaseURL interprets a connection string and returns the driver to
// use plus the DSN in that driver's format.
//
// Accepted forms:
//
//	postgres://... / postgresql://...   -> pgx, passed through unchanged
//	sqlite://rel.db / sqlite:///abs.db  -> sqlite file DSN
//	anything else                       -> treated as a sqlite file path
func ParseDatabaseURL(databaseURL string) (Driver, string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DriverPostgres, databaseURL
	}

	// Everything after the scheme is the file path, so sqlite:///a/b.db
	// keeps its leading slash and stays absolute.
	path := strings.TrimPrefix(databaseURL, "sqlite://")
	return DriverSQLite, sqliteDSN(path)
}

func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout(5000)", path)
}

// Open connects using the driver selected by ParseDatabaseURL and verifies
// the connection with a ping.
func Open(ctx context.Context, databaseURL string) (*sql.DB, Driver, error) {
	driver, dsn := ParseDatabaseURL(databaseURL)

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, driver, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, driver, fmt.Errorf("ping db: %w", err)
	}
	return db, driver, nil
}

// Rebinder rewrites '?' placeholders into a driver-specific form.
// Repositories write queries with '?' and apply the rebinder once.
type Rebinder func(query string) string

// RebindFor returns the Rebinder for the given driver: '$n' numbering for
// postgres, identity for sqlite.
func RebindFor(driver Driver) Rebinder {
	if driver != DriverPostgres {
		return func(query string) string { return query }
	}
	return func(query string) string {
		var b strings.Builder
		b.Grow(len(query) + 8)
		n := 0
		for i := 0; i < len(query); i++ {
			if query[i] == '?' {
				n++
				b.WriteByte('$')
				b.WriteString(strconv.Itoa(n))
				continue
			}
			b.WriteByte(query[i])
		}
		return b.String()
	}
}
