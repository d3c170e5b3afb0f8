package store

import (
	"context"
	"errors"
	"time"
)

// RedisClient defines the interface for Redis operations.
// This interface is compatible with github.com/redis/go-redis/v9.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) RedisStatusCmd
	Get(ctx context.Context, key string) RedisStringCmd
	Del(ctx context.Context, keys ...string) RedisIntCmd
	Close() error
}

// RedisStatusCmd represents a Redis status command result.
type RedisStatusCmd interface {
	Err() error
}

// RedisStringCmd represents a Redis string command result.
type RedisStringCmd interface {
	Result() (string, error)
	Err() error
}

// RedisIntCmd represents a Redis int command result.
type RedisIntCmd interface {
	Err() error
}

// ErrRedisNil is returned when a key doesn't exist in Redis.
// This should match redis.Nil from go-redis.
var ErrRedisNil = errors.New("redis: nil")

// RedisStore is a Redis-backed Store.
// It's suitable for session state shared across server instances.
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
	closed bool
}

// RedisStoreOption configures RedisStore behavior.
type RedisStoreOption func(*redisStoreConfig)

type redisStoreConfig struct {
	prefix string
	ttl    time.Duration
}

// WithRedisPrefix sets the key prefix for stored entries.
// Default: "sessionslot:".
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(c *redisStoreConfig) {
		c.prefix = prefix
	}
}

// WithRedisTTL sets the expiration applied to each write. This models the
// session lifetime; zero means entries never expire.
// Default: 0.
func WithRedisTTL(ttl time.Duration) RedisStoreOption {
	return func(c *redisStoreConfig) {
		c.ttl = ttl
	}
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client RedisClient, opts ...RedisStoreOption) *RedisStore {
	cfg := &redisStoreConfig{
		prefix: "sessionslot:",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &RedisStore{
		client: client,
		prefix: cfg.prefix,
		ttl:    cfg.ttl,
	}
}

// key returns the Redis key for an entry.
func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

// Get retrieves the value for key if an entry exists.
func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if r.closed {
		return "", false, ErrStoreClosed{}
	}

	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		// Check for nil (key doesn't exist)
		if err.Error() == ErrRedisNil.Error() {
			return "", false, nil
		}
		return "", false, err
	}

	return v, true, nil
}

// Set writes the value for key, applying the configured TTL.
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if r.closed {
		return ErrStoreClosed{}
	}

	return r.client.Set(ctx, r.key(key), value, r.ttl).Err()
}

// Delete removes the entry for key.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if r.closed {
		return ErrStoreClosed{}
	}

	return r.client.Del(ctx, r.key(key)).Err()
}

// Close marks the store as closed.
// Note: This does not close the underlying Redis client,
// as it may be shared with other components.
func (r *RedisStore) Close() error {
	r.closed = true
	return nil
}

// Prefix returns the current key prefix.
// This is for testing/debugging purposes.
func (r *RedisStore) Prefix() string {
	return r.prefix
}
