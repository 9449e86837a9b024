package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the token in Redis. Useful for shared or kiosk
// deployments where several client processes must see the same session.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore writing under prefix:key. A zero ttl
// persists the token without expiry; otherwise every Save refreshes it.
func NewRedisStore(client *redis.Client, prefix, key string, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if prefix == "" {
		prefix = "pantry"
	}
	if key == "" {
		key = DefaultStorageKey
	}
	return &RedisStore{
		client: client,
		key:    fmt.Sprintf("%s:%s", prefix, key),
		ttl:    ttl,
	}, nil
}

// Load reads the token. A missing key means no token.
func (r *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return token, nil
}

// Save writes the token through to Redis.
func (r *RedisStore) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

// Delete removes the token key. Deleting an absent key is a no-op.
func (r *RedisStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}
