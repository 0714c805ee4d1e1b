package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/domain"
)

// SaveSession stores a tab snapshot and indexes it under its owner.
func (s *Store) SaveSession(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, SessionKey(session.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.client.SAdd(ctx, UserSessionsKey(session.User), session.ID).Err(); err != nil {
		return fmt.Errorf("failed to index session: %w", err)
	}

	return nil
}

// GetSession retrieves a saved session by id.
func (s *Store) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, SessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ListSessions returns all saved sessions of a user, capped at MaxSessions.
func (s *Store) ListSessions(ctx context.Context, user string) ([]*domain.Session, error) {
	ids, err := s.client.SMembers(ctx, UserSessionsKey(user)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session ids: %w", err)
	}
	if len(ids) > MaxSessions {
		ids = ids[:MaxSessions]
	}

	sessions := make([]*domain.Session, 0, len(ids))
	for _, id := range ids {
		session, err := s.GetSession(ctx, id)
		if err != nil {
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// DeleteSession removes the session matching both id and user, with the
// same not-found semantics as DeleteBookmark.
func (s *Store) DeleteSession(ctx context.Context, user, id string) error {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return err
	}
	if session.User != user {
		return fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
	}

	if err := s.client.Del(ctx, SessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if err := s.client.SRem(ctx, UserSessionsKey(user), id).Err(); err != nil {
		return fmt.Errorf("failed to unindex session: %w", err)
	}

	return nil
}
