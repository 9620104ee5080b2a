// Package common defines shared constants and sentinel errors used across
// the identity and wiki services. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors. ErrorInvalidCredentials covers both an unknown username
	// and a wrong password so callers cannot enumerate accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")

	// ErrorUnauthorized means no valid identity could be established;
	// ErrorForbidden means the identity is valid but lacks rights.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Referential integrity (dangling catalog reference on page create).
	ErrorInvalidReference = errors.New("invalid reference")
)
