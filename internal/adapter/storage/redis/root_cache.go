package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RootCache implements ports.RootCache using Redis. It holds ledger-observed
// roots keyed by transaction reference so verification can survive short
// ledger outages.
type RootCache struct {
	client *goredis.Client
	prefix string
}

// NewRootCache creates a new Redis-backed root cache.
func NewRootCache(client *goredis.Client) *RootCache {
	return &RootCache{
		client: client,
		prefix: "anchor:root:",
	}
}

// Get retrieves a cached hex root by transaction reference.
// Returns "", nil when the key does not exist.
func (c *RootCache) Get(ctx context.Context, txRef string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+txRef).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis root cache get: %w", err)
	}
	return val, nil
}

// Set stores a ledger-observed root with TTL.
func (c *RootCache) Set(ctx context.Context, txRef string, rootHex string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+txRef, rootHex, ttl).Err(); err != nil {
		return fmt.Errorf("redis root cache set: %w", err)
	}
	return nil
}
