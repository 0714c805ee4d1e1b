package redis

import (
	"github.com/redis/go-redis/v9"
)

const (
	// MaxBookmarks caps a bookmark listing.
	MaxBookmarks = 1000
	// DefaultHistoryLimit is the history listing cap when the caller does
	// not supply one.
	DefaultHistoryLimit = 100
	// MaxSessions caps a session listing.
	MaxSessions = 100
)

// Store persists all five document collections (users, bookmarks, history,
// preferences, sessions) as JSON documents in Redis. Every operation is a
// single independent read/write/delete; there are no transactions and no
// retries, so concurrent writers get the store's last-writer-wins semantics.
type Store struct {
	client *redis.Client
}

// NewStore creates a new document store on top of an established client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}
