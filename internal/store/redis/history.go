package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/domain"
)

// AddHistory appends a visit to a user's browsing log. The per-user index
// is a sorted set scored by visit time, which keeps listings
// most-recent-first without a client-side sort. No dedup: two visits to the
// same URL are two entries.
func (s *Store) AddHistory(ctx context.Context, entry *domain.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := s.client.Set(ctx, HistoryKey(entry.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	member := redis.Z{
		Score:  float64(entry.VisitTime.UnixNano()),
		Member: entry.ID,
	}
	if err := s.client.ZAdd(ctx, UserHistoryKey(entry.User), member).Err(); err != nil {
		return fmt.Errorf("failed to index history entry: %w", err)
	}

	return nil
}

// ListHistory returns a user's entries sorted by visit time descending,
// capped at limit. A non-positive limit falls back to DefaultHistoryLimit.
func (s *Store) ListHistory(ctx context.Context, user string, limit int) ([]*domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	ids, err := s.client.ZRevRange(ctx, UserHistoryKey(user), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history ids: %w", err)
	}

	entries := make([]*domain.HistoryEntry, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, HistoryKey(id)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get history entry: %w", err)
		}

		var entry domain.HistoryEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

// ClearHistory deletes all entries for a user. Clearing an empty log is not
// an error.
func (s *Store) ClearHistory(ctx context.Context, user string) error {
	key := UserHistoryKey(user)

	ids, err := s.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get history ids: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, HistoryKey(id))
	}
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}
