package catalogs

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

// SQLRepository persists catalogs through a DBTX handle. Queries use '?'
// placeholders and are rewritten by the rebinder for the active driver.
type SQLRepository struct {
	db dbx.DBTX
	rb dbconn.Rebinder
}

func NewSQLRepository(db dbx.DBTX, rb dbconn.Rebinder) *SQLRepository {
	return &SQLRepository{db: db, rb: rb}
}

func (r *SQLRepository) Create(ctx context.Context, catalog *models.Catalog) (*models.Catalog, error) {

	query := r.rb(
		`INSERT INTO catalogs (name, hidden)
		 VALUES (?, ?)
		 RETURNING id
		 `)

	err := r.db.QueryRowContext(ctx, query, catalog.Name, catalog.Hidden).Scan(&catalog.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return catalog, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Catalog, error) {
	query := r.rb(
		`SELECT id, name, hidden FROM catalogs
		 WHERE id = ?
		 `)

	catalog := &models.Catalog{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&catalog.ID, &catalog.Name, &catalog.Hidden)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return catalog, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.Catalog, error) {
	query := r.rb(
		`SELECT id, name, hidden FROM catalogs
		 ORDER BY id
		 `)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Catalog
	for rows.Next() {
		catalog := &models.Catalog{}
		if err := rows.Scan(&catalog.ID, &catalog.Name, &catalog.Hidden); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, catalog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := r.rb(
		`DELETE FROM catalogs
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
