package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store is the key/value backend Memoize reads and writes
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisStore keeps memoized values in Redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects lazily to the Redis server at addr
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: "", // No password by default
			DB:       0,  // Default DB
		}),
	}
}

// Get returns the cached bytes for key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, key).Bytes()
}

// Set stores value under key for ttl
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Memoize returns the cached result for key, or calls fn and caches what it returns.
// A nil store, a cache miss and a broken cache all fall through to fn; errors are never cached.
func Memoize[T any](ctx context.Context, store Store, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var result T

	if store == nil {
		return fn()
	}

	// Try fetching from cache
	cachedData, err := store.Get(ctx, key)
	if err == nil {
		if jsonErr := json.Unmarshal(cachedData, &result); jsonErr == nil {
			return result, nil
		}
	}

	// Call the actual function
	result, err = fn()
	if err != nil {
		return result, err
	}

	// Store result in cache
	cacheData, err := json.Marshal(result)
	if err == nil {
		_ = store.Set(ctx, key, cacheData, ttl)
	}

	return result, nil
}
