package cache

import (
	"MediTrack/database"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin wrapper over the shared Redis client used by the
// database-backed repository for read-through caching.
type Cache struct {
	client *redis.Client
}

// NewCache creates a new Cache instance, ensuring that the Redis
// client has been initialized first.
func NewCache() (*Cache, error) {
	if database.RedisClient == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Cache{client: database.RedisClient}, nil
}

// Get returns the cached value, or an empty string when the key does
// not exist.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c.client == nil {
		return "", errors.New("Redis client is not initialized")
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return c.client.Del(ctx, key).Err()
}

// DeleteAll removes every key matching the pattern, scanning rather
// than blocking on KEYS.
func (c *Cache) DeleteAll(ctx context.Context, pattern string) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
