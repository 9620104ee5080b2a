// Package token implements the signed-token codec shared by the identity
// issuer and, on the verifying side, the identity service's verify endpoint.
// Tokens are HS256 JWTs carrying a subject and an expiry; the symmetric
// secret is shared out-of-band between both services.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AaronBlvde/wiki-platform/internal/common"
)

// Codec signs and verifies subject tokens with a single symmetric secret.
// Rotating the secret invalidates all outstanding tokens.
type Codec struct {
	secret []byte
}

// NewCodec builds a Codec around the shared signing secret. The secret is
// passed explicitly at construction; there is no process-wide default.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue produces a signed token asserting subject until now+ttl.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	return t.SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the subject.
// Any failure (bad signature, malformed encoding, missing subject, expired)
// is reported uniformly as common.ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !t.Valid {
		return "", common.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

// StripBearer removes an optional case-insensitive "Bearer " prefix from a
// header value, returning the bare token.
func StripBearer(raw string) string {
	raw = strings.TrimSpace(raw)
	const prefix = "bearer "
	if len(raw) >= len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
		return strings.TrimSpace(raw[len(prefix):])
	}
	return raw
}
