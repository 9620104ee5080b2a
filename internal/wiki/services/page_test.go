package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/authz"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/catalogs"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/pages"
)

// ---- fakes ----

type fakeCatalogsRepo struct {
	byID    map[int64]*models.Catalog
	created []*models.Catalog
	deleted []int64
}

func (f *fakeCatalogsRepo) Create(ctx context.Context, c *models.Catalog) (*models.Catalog, error) {
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCatalogsRepo) Get(ctx context.Context, id int64) (*models.Catalog, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCatalogsRepo) List(ctx context.Context) ([]*models.Catalog, error) {
	var result []*models.Catalog
	for _, c := range f.byID {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCatalogsRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePagesRepo struct {
	byID           map[int64]*models.Page
	created        []*models.Page
	updated        []*models.Page
	deleted        []int64
	deletedCatalog []int64
}

func (f *fakePagesRepo) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	p.ID = int64(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePagesRepo) Get(ctx context.Context, id int64) (*models.Page, error) {
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakePagesRepo) List(ctx context.Context, catalogID *int64) ([]*models.Page, error) {
	var result []*models.Page
	for _, p := range f.byID {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePagesRepo) Update(ctx context.Context, p *models.Page) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakePagesRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePagesRepo) DeleteByCatalog(ctx context.Context, catalogID int64) error {
	f.deletedCatalog = append(f.deletedCatalog, catalogID)
	return nil
}

type fakeRepoManager struct {
	catalogs *fakeCatalogsRepo
	pages    *fakePagesRepo
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Catalogs(db dbx.DBTX) catalogs.Repository            { return f.catalogs }
func (f *fakeRepoManager) Pages(db dbx.DBTX) pages.Repository                  { return f.pages }

func newFakes() *fakeRepoManager {
	return &fakeRepoManager{
		catalogs: &fakeCatalogsRepo{byID: map[int64]*models.Catalog{}},
		pages:    &fakePagesRepo{byID: map[int64]*models.Page{}},
	}
}

// ---- tests ----

func TestCreate_RecordsAuthor(t *testing.T) {
	rm := newFakes()
	s := NewPageService(nil, rm, authz.Policy{})

	page, err := s.Create(context.Background(), "alice", "Title", "Body", nil, false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if page.Author != "alice" {
		t.Fatalf("want author alice, got %q", page.Author)
	}
	if page.ID == 0 {
		t.Fatalf("created page must get an id")
	}
}

func TestCreate_RejectsMissingCatalog(t *testing.T) {
	rm := newFakes()
	s := NewPageService(nil, rm, authz.Policy{})

	missing := int64(42)
	_, err := s.Create(context.Background(), "alice", "Title", "Body", &missing, false)
	if !errors.Is(err, common.ErrorInvalidReference) {
		t.Fatalf("want common.ErrorInvalidReference, got %v", err)
	}
	if len(rm.pages.created) != 0 {
		t.Fatalf("page must not be created with a dangling catalog reference")
	}
}

func TestCreate_AcceptsExistingCatalog(t *testing.T) {
	rm := newFakes()
	rm.catalogs.byID[3] = &models.Catalog{ID: 3, Name: "Linux"}
	s := NewPageService(nil, rm, authz.Policy{})

	id := int64(3)
	page, err := s.Create(context.Background(), "alice", "Title", "Body", &id, false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if page.CatalogID == nil || *page.CatalogID != 3 {
		t.Fatalf("unexpected catalog id: %+v", page.CatalogID)
	}
}

func TestUpdate_OpenPolicyAllowsAnySubject(t *testing.T) {
	rm := newFakes()
	rm.pages.byID[5] = &models.Page{ID: 5, Title: "Old", Content: "old", Author: "alice"}
	s := NewPageService(nil, rm, authz.Policy{})

	title := "New"
	if err := s.Update(context.Background(), "bob", 5, &title, nil); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(rm.pages.updated) != 1 {
		t.Fatalf("expected one update")
	}
	got := rm.pages.updated[0]
	if got.Title != "New" || got.Content != "old" {
		t.Fatalf("nil content must keep the stored value, got %+v", got)
	}
}

func TestUpdate_RestrictedPolicyDeniesNonAuthor(t *testing.T) {
	rm := newFakes()
	rm.pages.byID[5] = &models.Page{ID: 5, Title: "Old", Author: "alice"}
	s := NewPageService(nil, rm, authz.Policy{RestrictEditsToAuthor: true})

	title := "New"
	err := s.Update(context.Background(), "bob", 5, &title, nil)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want common.ErrorForbidden, got %v", err)
	}
	if len(rm.pages.updated) != 0 {
		t.Fatalf("denied update must not reach storage")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	rm := newFakes()
	s := NewPageService(nil, rm, authz.Policy{})

	title := "New"
	err := s.Update(context.Background(), "alice", 42, &title, nil)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_AuthorOnly(t *testing.T) {
	rm := newFakes()
	rm.pages.byID[5] = &models.Page{ID: 5, Title: "Mine", Author: "alice"}
	s := NewPageService(nil, rm, authz.Policy{})

	if err := s.Delete(context.Background(), "bob", 5); !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("non-author delete: want common.ErrorForbidden, got %v", err)
	}
	if len(rm.pages.deleted) != 0 {
		t.Fatalf("denied delete must not reach storage")
	}

	if err := s.Delete(context.Background(), "alice", 5); err != nil {
		t.Fatalf("author delete error: %v", err)
	}
	if len(rm.pages.deleted) != 1 || rm.pages.deleted[0] != 5 {
		t.Fatalf("unexpected deletions: %v", rm.pages.deleted)
	}
}

func TestDelete_UnknownAuthorDeniedForEveryone(t *testing.T) {
	rm := newFakes()
	rm.pages.byID[7] = &models.Page{ID: 7, Title: "Legacy", Author: common.UnknownAuthor}
	s := NewPageService(nil, rm, authz.Policy{})

	err := s.Delete(context.Background(), "alice", 7)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want common.ErrorForbidden, got %v", err)
	}
}
