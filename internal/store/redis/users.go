package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/domain"
)

// SaveUser stores a user record and registers the username in the set of
// all known users.
func (s *Store) SaveUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := s.client.Set(ctx, UserKey(user.Username), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.client.SAdd(ctx, AllUsersKey(), user.Username).Err(); err != nil {
		return fmt.Errorf("failed to add user to set: %w", err)
	}

	return nil
}

// GetUser retrieves a user by exact username match. Returns
// domain.ErrNotFound if the user has never logged in.
func (s *Store) GetUser(ctx context.Context, username string) (*domain.User, error) {
	data, err := s.client.Get(ctx, UserKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// Usernames returns every known username. Used by the orphan sweeper to
// enumerate per-user indexes.
func (s *Store) Usernames(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, AllUsersKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get usernames: %w", err)
	}
	return names, nil
}
