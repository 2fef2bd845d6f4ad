// File: services/user/session_store.go
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"urbanease/models"
	"urbanease/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds account sessions server-side. This replaces the
// frontend's localStorage keys: the upstream bearer token, the remembered
// email, the role flag and the intro-seen flag all live here.
type SessionStore interface {
	Save(ctx context.Context, session models.UserSession) error
	Get(ctx context.Context, sessionID string) (*models.UserSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.UserSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal user session: %w", err)
	}
	if err := s.client.Set(ctx, utils.UserSessionPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save user session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.UserSession, error) {
	data, err := s.client.Get(ctx, utils.UserSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session models.UserSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, utils.UserSessionPrefix+sessionID).Err()
}
