package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/repomanager"
)

// CatalogService provides catalog operations. Deleting a catalog removes
// its articles in the same transaction.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func (s *CatalogService) Create(ctx context.Context, name string, hidden bool) (*models.Catalog, error) {
	catalog, err := s.repomanager.Catalogs(s.db).Create(ctx, &models.Catalog{Name: name, Hidden: hidden})
	if err != nil {
		return nil, fmt.Errorf("error creating catalog: %w", err)
	}
	return catalog, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*models.Catalog, error) {
	return s.repomanager.Catalogs(s.db).List(ctx)
}

// Delete removes a catalog together with its articles atomically.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Pages(tx).DeleteByCatalog(ctx, id); err != nil {
			return err
		}
		return s.repomanager.Catalogs(tx).Delete(ctx, id)
	})
}
