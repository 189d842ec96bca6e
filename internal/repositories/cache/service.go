// Package cache wraps the Redis client used as a read-through cache in front
// of the relational store. Balances are never cached; only user lookups are.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bankapi/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not present.
var ErrCacheMiss = errors.New("cache miss")

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// GenerateKey builds a namespaced cache key.
func (s *CacheService) GenerateKey(parts ...interface{}) string {
	key := "bankapi"
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// CacheUser stores a user under its ID key.
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	return s.Set(ctx, s.GenerateKey("user", "id", user.ID), user)
}

// GetUser fetches a cached user by ID key.
func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	if err := s.Get(ctx, key, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// InvalidateUser drops the cached entry for a user.
func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	return s.Delete(ctx, s.GenerateKey("user", "id", userID))
}

// FlushAll clears the whole cache. Called once on startup so stale entries
// never survive a schema change.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings the Redis server.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
