package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "admin:sess:"

// RedisStore keeps sessions in Redis so several instances can share them
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Create issues a new session for the user
func (s *RedisStore) Create(ctx context.Context, userID int) (string, error) {
	token := newToken()
	if err := s.client.Set(ctx, redisKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

// Resolve returns the user bound to the token
func (s *RedisStore) Resolve(ctx context.Context, token string) (int, bool, error) {
	userID, err := s.client.Get(ctx, redisKeyPrefix+token).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, true, nil
}

// Destroy removes the session
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
