// Package api is the HTTP client for the identity and wiki services used
// by the command-line client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AaronBlvde/wiki-platform/internal/common"
)

// Page mirrors the wiki service article representation.
type Page struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CatalogID *int64 `json:"catalog_id,omitempty"`
	Hidden    bool   `json:"hidden"`
	Author    string `json:"author"`
}

// Catalog mirrors the wiki service catalog representation.
type Catalog struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Client talks to both services. After a successful Login the issued token
// is attached to every wiki request.
type Client struct {
	identityAddr string
	wikiAddr     string
	http         *http.Client
	token        string
}

func NewClient(identityAddr, wikiAddr string) *Client {
	return &Client{
		identityAddr: strings.TrimRight(identityAddr, "/"),
		wikiAddr:     strings.TrimRight(wikiAddr, "/"),
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// IsLoggedIn reports whether a token from a successful login is held.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout drops the held token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, c.identityAddr+"/api/register", body, false, nil)
}

// Login authenticates and stores the issued token for later wiki calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, c.identityAddr+"/api/authenticate", body, false, &resp); err != nil {
		return err
	}

	c.token = resp.Token
	return nil
}

func (c *Client) ListPages(ctx context.Context) ([]Page, error) {
	var pages []Page
	if err := c.do(ctx, http.MethodGet, c.wikiAddr+"/api/pages/", nil, true, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (c *Client) CreatePage(ctx context.Context, title, content string, catalogID *int64) (*Page, error) {
	body := map[string]any{"title": title, "content": content}
	if catalogID != nil {
		body["catalog_id"] = *catalogID
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, c.wikiAddr+"/api/pages/", body, true, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdatePage(ctx context.Context, id int64, title, content *string) error {
	body := map[string]any{}
	if title != nil {
		body["title"] = *title
	}
	if content != nil {
		body["content"] = *content
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/api/pages/%d", c.wikiAddr, id), body, true, nil)
}

func (c *Client) DeletePage(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/api/pages/%d", c.wikiAddr, id), nil, true, nil)
}

func (c *Client) ListCatalogs(ctx context.Context) ([]Catalog, error) {
	var catalogs []Catalog
	if err := c.do(ctx, http.MethodGet, c.wikiAddr+"/api/catalogs/", nil, true, &catalogs); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Error statuses map onto the shared sentinels so callers can
// branch with errors.Is; the server's error message is attached when one
// came back.
func (c *Client) do(ctx context.Context, method, url string, body any, authorized bool, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusForbidden:
		sentinel = common.ErrorForbidden
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	default:
		sentinel = common.ErrorInternal
	}

	if body.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, body.Error)
	}
	return sentinel
}
