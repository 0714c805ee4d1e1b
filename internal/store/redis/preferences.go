package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/domain"
)

// GetPreferences retrieves a user's preferences record. Returns
// domain.ErrNotFound if none has been stored yet.
func (s *Store) GetPreferences(ctx context.Context, user string) (*domain.Preferences, error) {
	data, err := s.client.Get(ctx, PreferencesKey(user)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("preferences for %q: %w", user, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	return &prefs, nil
}

// SavePreferences stores a full preferences record, overwriting any
// previous one.
func (s *Store) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := s.client.Set(ctx, PreferencesKey(prefs.User), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}

// UpdatePreferences merges the provided fields into a user's record via
// upsert: nil means "not supplied" and leaves the stored value untouched.
// When no record exists yet the update starts from the documented defaults,
// so an omitted field carries its default rather than being absent.
// UpdatedAt is always refreshed.
func (s *Store) UpdatePreferences(ctx context.Context, user string, theme *string, settings map[string]any, now time.Time) (*domain.Preferences, error) {
	prefs, err := s.GetPreferences(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		prefs = domain.DefaultPreferences(user, now)
	}

	if theme != nil {
		prefs.Theme = *theme
	}
	if settings != nil {
		prefs.Settings = settings
	}
	prefs.UpdatedAt = now

	if err := s.SavePreferences(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}
