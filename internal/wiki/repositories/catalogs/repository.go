// Package catalogs persists article catalogs.
package catalogs

import (
	"context"

	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
)

// Repository defines storage operations for catalogs.
type Repository interface {
	Create(ctx context.Context, catalog *models.Catalog) (*models.Catalog, error)
	Get(ctx context.Context, id int64) (*models.Catalog, error)
	List(ctx context.Context) ([]*models.Catalog, error)
	Delete(ctx context.Context, id int64) error
}
