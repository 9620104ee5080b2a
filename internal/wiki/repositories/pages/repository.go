// Package pages persists wiki articles.
package pages

import (
	"context"

	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
)

// Repository defines storage operations for articles. Update changes only
// title and content: the author recorded at creation time never changes.
type Repository interface {
	Create(ctx context.Context, page *models.Page) (*models.Page, error)
	Get(ctx context.Context, id int64) (*models.Page, error)
	List(ctx context.Context, catalogID *int64) ([]*models.Page, error)
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id int64) error
	DeleteByCatalog(ctx context.Context, catalogID int64) error
}
