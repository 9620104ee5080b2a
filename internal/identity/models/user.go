// Package models defines persistence-level types for the identity service.
package models

// User is a credential-store record. PasswordHash is a bcrypt hash; the
// plaintext password never leaves the transport handler.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}
