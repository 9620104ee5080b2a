package models

// Page is a wiki article. Author is the username recorded at creation
// time; rows that predate author tracking carry the "unknown" placeholder.
// CatalogID is nil for uncategorized articles.
type Page struct {
	ID        int64
	Title     string
	Content   string
	CatalogID *int64
	Hidden    bool
	Author    string
}
