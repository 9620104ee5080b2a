package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
)

// SQLRepository persists articles through a DBTX handle. Queries use '?'
// placeholders and are rewritten by the rebinder for the active driver.
//
// content and author are scanned through sql.Null* because legacy rows may
// hold NULLs: content was always nullable, and author did not exist before
// the soft migration. A NULL or empty author comes back as the "unknown"
// placeholder so ownership checks treat those rows uniformly.
type SQLRepository struct {
	db dbx.DBTX
	rb dbconn.Rebinder
}

func NewSQLRepository(db dbx.DBTX, rb dbconn.Rebinder) *SQLRepository {
	return &SQLRepository{db: db, rb: rb}
}

func (r *SQLRepository) Create(ctx context.Context, page *models.Page) (*models.Page, error) {

	query := r.rb(
		`INSERT INTO pages (title, content, catalog_id, hidden, author)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id
		 `)

	err := r.db.QueryRowContext(ctx, query,
		page.Title, page.Content, page.CatalogID, page.Hidden, page.Author).Scan(&page.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Page, error) {
	query := r.rb(
		`SELECT id, title, content, catalog_id, hidden, author FROM pages
		 WHERE id = ?
		 `)

	row := r.db.QueryRowContext(ctx, query, id)
	page, err := scanPage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

func (r *SQLRepository) List(ctx context.Context, catalogID *int64) ([]*models.Page, error) {

	query := `SELECT id, title, content, catalog_id, hidden, author FROM pages`
	args := []any{}
	if catalogID != nil {
		query += ` WHERE catalog_id = ?`
		args = append(args, *catalogID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, r.rb(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) Update(ctx context.Context, page *models.Page) error {
	query := r.rb(
		`UPDATE pages
		 SET title = ?, content = ?
		 WHERE id = ?
		 `)

	res, err := r.db.ExecContext(ctx, query, page.Title, page.Content, page.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := r.rb(
		`DELETE FROM pages
		 WHERE id = ?
		 `)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLRepository) DeleteByCatalog(ctx context.Context, catalogID int64) error {
	query := r.rb(
		`DELETE FROM pages
		 WHERE catalog_id = ?
		 `)

	_, err := r.db.ExecContext(ctx, query, catalogID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*models.Page, error) {
	page := &models.Page{}

	var content, author sql.NullString
	var catalogID sql.NullInt64

	err := row.Scan(&page.ID, &page.Title, &content, &catalogID, &page.Hidden, &author)
	if err != nil {
		return nil, err
	}

	page.Content = content.String
	if catalogID.Valid {
		page.CatalogID = &catalogID.Int64
	}

	page.Author = author.String
	if page.Author == "" {
		page.Author = common.UnknownAuthor
	}

	return page, nil
}
