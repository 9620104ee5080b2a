// Package services contains wiki-service business logic: article and
// catalog CRUD with ownership checks on mutations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/authz"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/metrics"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/repomanager"
)

// PageService provides article operations. Every mutation takes the
// verified subject of the caller; the ownership policy decides whether the
// subject may touch the targeted article.
type PageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      authz.Policy
}

func NewPageService(db *sql.DB, m repomanager.RepositoryManager, policy authz.Policy) *PageService {
	return &PageService{db: db, repomanager: m, policy: policy}
}

// Create stores a new article owned by subject. A non-nil catalogID must
// reference an existing catalog, otherwise common.ErrorInvalidReference.
func (s *PageService) Create(ctx context.Context, subject, title, content string, catalogID *int64, hidden bool) (*models.Page, error) {
	if catalogID != nil {
		if _, err := s.repomanager.Catalogs(s.db).Get(ctx, *catalogID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrorInvalidReference
			}
			return nil, fmt.Errorf("error checking catalog: %w", err)
		}
	}

	page := &models.Page{
		Title:     title,
		Content:   content,
		CatalogID: catalogID,
		Hidden:    hidden,
		Author:    subject,
	}

	page, err := s.repomanager.Pages(s.db).Create(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("error creating page: %w", err)
	}

	metrics.ArticlesCreated.Inc()
	return page, nil
}

// Get returns a single article.
func (s *PageService) Get(ctx context.Context, id int64) (*models.Page, error) {
	return s.repomanager.Pages(s.db).Get(ctx, id)
}

// List returns articles, optionally restricted to one catalog.
func (s *PageService) List(ctx context.Context, catalogID *int64) ([]*models.Page, error) {
	return s.repomanager.Pages(s.db).List(ctx, catalogID)
}

// Update modifies an article's title and/or content. Nil fields keep the
// stored value. The ownership policy gates the edit; the recorded author
// never changes.
func (s *PageService) Update(ctx context.Context, subject string, id int64, title, content *string) error {
	repo := s.repomanager.Pages(s.db)

	page, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.CanEdit(subject, page.Author) {
		metrics.AuthzDenied.WithLabelValues("edit").Inc()
		return common.ErrorForbidden
	}

	if title != nil {
		page.Title = *title
	}
	if content != nil {
		page.Content = *content
	}

	return repo.Update(ctx, page)
}

// Delete removes an article. Only the author may delete; articles without
// a recorded author cannot be deleted through the API.
func (s *PageService) Delete(ctx context.Context, subject string, id int64) error {
	repo := s.repomanager.Pages(s.db)

	page, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.CanDelete(subject, page.Author) {
		metrics.AuthzDenied.WithLabelValues("delete").Inc()
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, id)
}
