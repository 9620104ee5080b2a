// Package models defines the domain entities of the wiki service.
package models

// Catalog groups articles. Hidden catalogs are kept in storage but
// excluded from public listings.
type Catalog struct {
	ID     int64
	Name   string
	Hidden bool
}
