package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/authz"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/repomanager"
)

// catalog tests run against a real sqlite file so the transactional
// delete path is exercised end to end.
func newSQLiteServices(t *testing.T) (*CatalogService, *PageService, *sql.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "wiki.db")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rm := repomanager.NewSQLRepositoryManager(dbconn.DriverSQLite)
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}

	return NewCatalogService(db, rm), NewPageService(db, rm, authz.Policy{}), db
}

func TestCatalogCreateAndList(t *testing.T) {
	cs, _, _ := newSQLiteServices(t)
	ctx := context.Background()

	c, err := cs.Create(ctx, "Linux", false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("created catalog must get an id")
	}

	list, err := cs.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Linux" {
		t.Fatalf("unexpected catalogs: %+v", list)
	}
}

func TestCatalogDelete_RemovesArticlesAtomically(t *testing.T) {
	cs, ps, _ := newSQLiteServices(t)
	ctx := context.Background()

	c, err := cs.Create(ctx, "Linux", false)
	if err != nil {
		t.Fatalf("Create catalog error: %v", err)
	}
	inCatalog, err := ps.Create(ctx, "alice", "In catalog", "body", &c.ID, false)
	if err != nil {
		t.Fatalf("Create page error: %v", err)
	}
	loose, err := ps.Create(ctx, "alice", "Loose", "body", nil, false)
	if err != nil {
		t.Fatalf("Create page error: %v", err)
	}

	if err := cs.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, err := ps.Get(ctx, inCatalog.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("catalog article must be gone, got %v", err)
	}
	if _, err := ps.Get(ctx, loose.ID); err != nil {
		t.Fatalf("uncategorized article must survive, got %v", err)
	}

	list, err := cs.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("catalog must be gone, got %+v", list)
	}
}

func TestCatalogDelete_NotFound(t *testing.T) {
	cs, _, _ := newSQLiteServices(t)

	err := cs.Delete(context.Background(), 42)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
