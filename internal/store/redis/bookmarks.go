package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/domain"
)

// SaveBookmark stores a bookmark document and indexes it under its owner.
func (s *Store) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	data, err := json.Marshal(bookmark)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	if err := s.client.Set(ctx, BookmarkKey(bookmark.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	if err := s.client.SAdd(ctx, UserBookmarksKey(bookmark.User), bookmark.ID).Err(); err != nil {
		return fmt.Errorf("failed to index bookmark: %w", err)
	}

	return nil
}

// GetBookmark retrieves a bookmark document by id.
func (s *Store) GetBookmark(ctx context.Context, id string) (*domain.Bookmark, error) {
	data, err := s.client.Get(ctx, BookmarkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("bookmark %q: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var bookmark domain.Bookmark
	if err := json.Unmarshal(data, &bookmark); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}

	return &bookmark, nil
}

// ListBookmarks returns all bookmarks of a user, unordered, capped at
// MaxBookmarks results.
func (s *Store) ListBookmarks(ctx context.Context, user string) ([]*domain.Bookmark, error) {
	ids, err := s.client.SMembers(ctx, UserBookmarksKey(user)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark ids: %w", err)
	}
	if len(ids) > MaxBookmarks {
		ids = ids[:MaxBookmarks]
	}

	bookmarks := make([]*domain.Bookmark, 0, len(ids))
	for _, id := range ids {
		bookmark, err := s.GetBookmark(ctx, id)
		if err != nil {
			// Skip index entries whose document is gone; the sweeper
			// reclaims them.
			continue
		}
		bookmarks = append(bookmarks, bookmark)
	}

	return bookmarks, nil
}

// DeleteBookmark removes the bookmark matching both id and user. Returns
// domain.ErrNotFound when no such bookmark exists for that user, including
// when the id belongs to a different user.
func (s *Store) DeleteBookmark(ctx context.Context, user, id string) error {
	bookmark, err := s.GetBookmark(ctx, id)
	if err != nil {
		return err
	}
	if bookmark.User != user {
		return fmt.Errorf("bookmark %q: %w", id, domain.ErrNotFound)
	}

	if err := s.client.Del(ctx, BookmarkKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if err := s.client.SRem(ctx, UserBookmarksKey(user), id).Err(); err != nil {
		return fmt.Errorf("failed to unindex bookmark: %w", err)
	}

	return nil
}

// SaveBookmarksMany stores multiple bookmarks in one round trip. Used by
// the seed importer.
func (s *Store) SaveBookmarksMany(ctx context.Context, bookmarks []*domain.Bookmark) error {
	pipe := s.client.Pipeline()

	for _, bookmark := range bookmarks {
		data, err := json.Marshal(bookmark)
		if err != nil {
			return fmt.Errorf("failed to marshal bookmark %s: %w", bookmark.ID, err)
		}
		pipe.Set(ctx, BookmarkKey(bookmark.ID), data, 0)
		pipe.SAdd(ctx, UserBookmarksKey(bookmark.User), bookmark.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}

	return nil
}
