package domain

import "time"

// Bookmark is a saved page for a single user.
//
// The ID is an opaque unique token: UUIDs for bookmarks created through the
// API, content-derived hashes for bookmarks imported from a seed file. Both
// satisfy the contract (unique across all bookmarks, meaningless to callers).
type Bookmark struct {
	// ID is the canonical unique identifier.
	ID string `json:"id"`

	// User is the denormalized owner. It is a plain string, not a foreign
	// key: nothing enforces that the user document exists.
	User string `json:"user"`

	// URL is the bookmarked page. Stored verbatim, never validated for
	// well-formedness.
	URL string `json:"url"`

	// Title is the page title as supplied by the caller.
	Title string `json:"title"`

	// Favicon is an optional icon URL.
	Favicon string `json:"favicon,omitempty"`

	// CreatedAt is stamped when the bookmark is stored.
	CreatedAt time.Time `json:"created_at"`
}
