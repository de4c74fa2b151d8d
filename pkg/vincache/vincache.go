// Package vincache caches decoded vehicle identities in Redis, keyed by VIN.
package vincache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "wessley:vin:"

// Cache stores JSON-encoded values of type T with a fixed TTL.
type Cache[T any] struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// New returns a cache using rdb. A zero ttl stores entries without expiry.
func New[T any](rdb redis.UniversalClient, ttl time.Duration) *Cache[T] {
	return &Cache[T]{rdb: rdb, prefix: DefaultPrefix, ttl: ttl}
}

// WithPrefix returns a copy of c that uses prefix for keys.
func (c *Cache[T]) WithPrefix(prefix string) *Cache[T] {
	cp := *c
	cp.prefix = prefix
	return &cp
}

func (c *Cache[T]) key(vin string) string { return c.prefix + vin }

// Get returns the cached value for vin. ok is false on a miss.
func (c *Cache[T]) Get(ctx context.Context, vin string) (v T, ok bool, err error) {
	data, err := c.rdb.Get(ctx, c.key(vin)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("vincache: get %s: %w", vin, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("vincache: decode %s: %w", vin, err)
	}
	return v, true, nil
}

// Set stores v under vin.
func (c *Cache[T]) Set(ctx context.Context, vin string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("vincache: encode %s: %w", vin, err)
	}
	if err := c.rdb.Set(ctx, c.key(vin), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("vincache: set %s: %w", vin, err)
	}
	return nil
}

// Delete drops the entry for vin.
func (c *Cache[T]) Delete(ctx context.Context, vin string) error {
	if err := c.rdb.Del(ctx, c.key(vin)).Err(); err != nil {
		return fmt.Errorf("vincache: delete %s: %w", vin, err)
	}
	return nil
}

// Ping checks the connection.
func (c *Cache[T]) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
