package seedfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/satchelapp/satchel/internal/domain"
)

// Mapper converts seed entries to domain bookmarks.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapBookmarks converts a SeedConfig to domain bookmarks. Entries without
// a user or URL are skipped; a missing title falls back to the URL. Ids are
// content-derived so that re-importing the same file is idempotent.
func (m *Mapper) MapBookmarks(config SeedConfig, now time.Time) ([]*domain.Bookmark, error) {
	bookmarks := make([]*domain.Bookmark, 0)

	for _, group := range config {
		if group.User == "" {
			continue
		}
		for _, entry := range group.Bookmarks {
			if entry.URL == "" {
				continue
			}

			title := entry.Title
			if title == "" {
				title = entry.URL
			}

			bookmarks = append(bookmarks, &domain.Bookmark{
				ID:        BookmarkID(group.User, entry.URL),
				User:      group.User,
				URL:       entry.URL,
				Title:     title,
				Favicon:   entry.Favicon,
				CreatedAt: now,
			})
		}
	}

	if len(bookmarks) == 0 {
		return nil, fmt.Errorf("no valid bookmarks found in seed config")
	}

	return bookmarks, nil
}

// BookmarkID derives a stable id from the owner and URL, so the same seed
// entry always maps to the same document.
func BookmarkID(user, url string) string {
	sum := sha256.Sum256([]byte(user + "\n" + url))
	return hex.EncodeToString(sum[:])[:12]
}
