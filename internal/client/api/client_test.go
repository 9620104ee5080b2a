package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AaronBlvde/wiki-platform/internal/common"
)

func TestLogin_StoresTokenForWikiCalls(t *testing.T) {
	identity := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/authenticate" {
			t.Errorf("unexpected identity path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer identity.Close()

	var seenAuth string
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get(common.AuthorizationHeaderName)
		json.NewEncoder(w).Encode([]Page{{ID: 1, Title: "A", Author: "alice"}})
	}))
	defer wiki.Close()

	c := NewClient(identity.URL, wiki.URL)

	if c.IsLoggedIn() {
		t.Fatalf("fresh client must not be logged in")
	}
	if err := c.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !c.IsLoggedIn() {
		t.Fatalf("client must be logged in after Login")
	}

	pages, err := c.ListPages(context.Background())
	if err != nil {
		t.Fatalf("ListPages error: %v", err)
	}
	if len(pages) != 1 || pages[0].Author != "alice" {
		t.Fatalf("unexpected pages: %+v", pages)
	}
	if seenAuth != "Bearer tok-123" {
		t.Fatalf("wiki call must carry the token, got %q", seenAuth)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"unauthorized"}`, common.ErrorUnauthorized},
		{"forbidden", http.StatusForbidden, `{"error":"forbidden"}`, common.ErrorForbidden},
		{"not found", http.StatusNotFound, `{"error":"not found"}`, common.ErrorNotFound},
		{"server error", http.StatusInternalServerError, ``, common.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, srv.URL)

			err := c.DeletePage(context.Background(), 1)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRegister_SurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "user exists"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)

	err := c.Register(context.Background(), "alice", "pw")
	if err == nil || err.Error() != "internal error: user exists" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogout_DropsToken(t *testing.T) {
	c := NewClient("http://id", "http://wiki")
	c.token = "tok"

	c.Logout()
	if c.IsLoggedIn() {
		t.Fatalf("Logout must drop the token")
	}
}
