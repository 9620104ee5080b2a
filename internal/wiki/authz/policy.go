// Package authz implements the ownership policy for article mutations.
package authz

import "github.com/AaronBlvde/wiki-platform/internal/common"

// Policy decides whether a verified subject may mutate an article.
// Deletion is always restricted to the author. Editing is open to any
// authenticated subject unless RestrictEditsToAuthor is set.
type Policy struct {
	RestrictEditsToAuthor bool
}

// isOwner reports whether subject owns the article with the given author.
// Articles whose author is empty or the "unknown" placeholder have no
// owner: nobody matches them, so owner-only actions on such rows are
// denied for everyone.
func (p Policy) isOwner(subject, author string) bool {
	if subject == "" || author == "" || author == common.UnknownAuthor {
		return false
	}
	return subject == author
}

// CanEdit reports whether subject may modify the article.
func (p Policy) CanEdit(subject, author string) bool {
	if p.RestrictEditsToAuthor {
		return p.isOwner(subject, author)
	}
	return subject != ""
}

// CanDelete reports whether subject may delete the article.
func (p Policy) CanDelete(subject, author string) bool {
	return p.isOwner(subject, author)
}
