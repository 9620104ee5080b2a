package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
	"github.com/AaronBlvde/wiki-platform/internal/dbx"
	"github.com/AaronBlvde/wiki-platform/internal/identity/models"
)

// SQLRepository persists users through a DBTX handle. Queries use '?'
// placeholders and are rewritten by the rebinder for the active driver.
type SQLRepository struct {
	db dbx.DBTX
	rb dbconn.Rebinder
}

func NewSQLRepository(db dbx.DBTX, rb dbconn.Rebinder) *SQLRepository {
	return &SQLRepository{db: db, rb: rb}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query := r.rb(
		`INSERT INTO users (id, username, password_hash)
		 VALUES (?, ?, ?)
		 `)

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := r.rb(
		`SELECT id, username, password_hash FROM users
		 WHERE username = ?
		 `)

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
