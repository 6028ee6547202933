package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// MonthlyVolumeCache implements ports.MonthlyVolumeCache using Redis.
// Keys are stored as given, without a prefix, and never expire.
type MonthlyVolumeCache struct {
	client goredis.UniversalClient
}

// NewMonthlyVolumeCache creates a new Redis-backed monthly volume cache.
func NewMonthlyVolumeCache(client goredis.UniversalClient) *MonthlyVolumeCache {
	return &MonthlyVolumeCache{client: client}
}

// Get returns the stored payload, or nil, nil if the key does not exist.
func (c *MonthlyVolumeCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis monthly volume get: %w", err)
	}
	return val, nil
}

// Set stores value under key with no expiry.
func (c *MonthlyVolumeCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis monthly volume set: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *MonthlyVolumeCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis monthly volume delete: %w", err)
	}
	return nil
}
