package repomanager

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	if err != nil {
		t.Fatalf("tableExists query failed: %v", err)
	}
	return n > 0
}

func TestRunMigrations_CreatesUsersTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "identity.db")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	m := NewSQLRepositoryManager(dbconn.DriverSQLite)
	if err := m.RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}

	if !tableExists(t, db, "users") {
		t.Fatalf("expected users table to exist after migrations")
	}
	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table to exist after migrations")
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "identity.db")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	m := NewSQLRepositoryManager(dbconn.DriverSQLite)

	if err := m.RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (first) error: %v", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (second) should be idempotent, got error: %v", err)
	}

	if !tableExists(t, db, "users") {
		t.Fatalf("expected users table to exist after repeated migrations")
	}
}
