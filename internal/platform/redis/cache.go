// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a byte-oriented key/value cache on top of a Redis client.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a Cache whose keys are all namespaced by prefix.
func NewCache(client *redis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// Get returns the cached value for key. found is false when the key is
// absent or expired.
func (cache *Cache) Get(context stdctx.Context, key string) ([]byte, bool, error) {
	value, err := cache.client.Get(context, cache.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_cache_get_failed: %w", err)
	}
	return value, true, nil
}

// Set stores value under key for ttl.
func (cache *Cache) Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, cache.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (cache *Cache) Delete(context stdctx.Context, key string) error {
	if err := cache.client.Del(context, cache.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis_cache_delete_failed: %w", err)
	}
	return nil
}
