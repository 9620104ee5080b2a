package token

import (
	"errors"
	"testing"
	"time"

	"github.com/AaronBlvde/wiki-platform/internal/common"
)

func TestIssueAndDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec("super-secret")

	tok, err := c.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := c.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec("secret")

	tok, err := c.Issue("u1", -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = c.Decode(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestDecode_NearExpiryStillValid(t *testing.T) {
	t.Parallel()

	c := NewCodec("secret")

	// A token with a tiny positive ttl must still decode before the
	// deadline passes.
	tok, err := c.Issue("u1", 2*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := c.Decode(tok); err != nil {
		t.Fatalf("token should be valid before expiry, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec("right-secret").Issue("u2", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewCodec("wrong-secret").Decode(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestDecode_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("k").Decode("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestDecode_EmptySubject(t *testing.T) {
	t.Parallel()

	c := NewCodec("k")
	tok, err := c.Issue("", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = c.Decode(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for empty subject, got %v", err)
	}
}

func TestStripBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"raw token", "abc.def.ghi", "abc.def.ghi"},
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase prefix", "bearer abc", "abc"},
		{"mixed case prefix", "BeArEr abc", "abc"},
		{"surrounding spaces", "  Bearer abc  ", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripBearer(tt.in); got != tt.want {
				t.Fatalf("StripBearer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
