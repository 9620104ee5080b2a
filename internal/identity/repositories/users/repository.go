package users

import (
	"context"

	"github.com/AaronBlvde/wiki-platform/internal/identity/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
