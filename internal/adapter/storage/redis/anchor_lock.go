package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AnchorLock implements ports.AnchorLock using Redis SET NX. The TTL caps
// how long a crashed coordinator can keep a batch locked.
type AnchorLock struct {
	client *goredis.Client
	prefix string
}

// NewAnchorLock creates a new Redis-backed anchor lock.
func NewAnchorLock(client *goredis.Client) *AnchorLock {
	return &AnchorLock{
		client: client,
		prefix: "anchor:lock:",
	}
}

// Acquire atomically takes the per-batch lock. Returns false when another
// coordinator already holds it.
func (l *AnchorLock) Acquire(ctx context.Context, batchID string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+batchID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — lock is held elsewhere
			return false, nil
		}
		return false, fmt.Errorf("redis anchor lock acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees the per-batch lock.
func (l *AnchorLock) Release(ctx context.Context, batchID string) error {
	if err := l.client.Del(ctx, l.prefix+batchID).Err(); err != nil {
		return fmt.Errorf("redis anchor lock release: %w", err)
	}
	return nil
}
