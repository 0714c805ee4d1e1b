package redis

import (
	"context"
	"fmt"
)

// SweepUser removes index members whose backing document no longer exists.
// The document-plus-index layout can drift when a document delete succeeds
// but the index update does not; listings already skip such members, this
// reclaims them. Returns the number of members removed.
func (s *Store) SweepUser(ctx context.Context, user string) (int, error) {
	removed := 0

	n, err := s.sweepSet(ctx, UserBookmarksKey(user), BookmarkKey)
	if err != nil {
		return removed, fmt.Errorf("failed to sweep bookmarks: %w", err)
	}
	removed += n

	n, err = s.sweepSet(ctx, UserSessionsKey(user), SessionKey)
	if err != nil {
		return removed, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	removed += n

	n, err = s.sweepHistory(ctx, user)
	if err != nil {
		return removed, fmt.Errorf("failed to sweep history: %w", err)
	}
	removed += n

	return removed, nil
}

func (s *Store) sweepSet(ctx context.Context, indexKey string, docKey func(string) string) (int, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range ids {
		exists, err := s.client.Exists(ctx, docKey(id)).Result()
		if err != nil {
			return removed, err
		}
		if exists > 0 {
			continue
		}
		if err := s.client.SRem(ctx, indexKey, id).Err(); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

func (s *Store) sweepHistory(ctx context.Context, user string) (int, error) {
	key := UserHistoryKey(user)

	ids, err := s.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range ids {
		exists, err := s.client.Exists(ctx, HistoryKey(id)).Result()
		if err != nil {
			return removed, err
		}
		if exists > 0 {
			continue
		}
		if err := s.client.ZRem(ctx, key, id).Err(); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
