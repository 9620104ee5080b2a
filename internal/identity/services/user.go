// Package services contains identity-service business logic: registration,
// credential verification, and token issue/verify.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/identity/config"
	"github.com/AaronBlvde/wiki-platform/internal/identity/metrics"
	"github.com/AaronBlvde/wiki-platform/internal/identity/models"
	"github.com/AaronBlvde/wiki-platform/internal/identity/repositories/repomanager"
	"github.com/AaronBlvde/wiki-platform/internal/token"
)

// UserService provides authentication operations:
//   - Register: create users in the credential store
//   - Authenticate: verify credentials and mint a token
//   - Verify: decode a presented token into a subject
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *token.Codec
	tokenTTL    time.Duration
}

// NewUserService constructs a UserService using repositories and service
// config. The token codec is built here from the configured secret; no
// ambient secret exists.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		codec:       token.NewCodec(cfg.SecretKey),
		tokenTTL:    cfg.TokenValidityDuration,
	}
}

// Register creates a user with a bcrypt-hashed password. An existing
// username yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	metrics.Registrations.Inc()
	return user, nil
}

// Authenticate verifies credentials and mints a token carrying the username
// as its subject. A missing user and a wrong password produce the same
// ErrorInvalidCredentials so callers cannot enumerate usernames.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", common.ErrorInvalidCredentials
	}

	tok, err := s.codec.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}

	metrics.Logins.Inc()
	return tok, nil
}

// Verify decodes a raw token value, tolerating an optional "Bearer " prefix.
// It never fails toward the transport: any decode problem reports
// valid=false without a subject.
func (s *UserService) Verify(_ context.Context, raw string) (bool, string) {
	subject, err := s.codec.Decode(token.StripBearer(raw))
	if err != nil {
		return false, ""
	}
	return true, subject
}
