package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorLock_Acquire(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewAnchorLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "batch-1", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "first acquire should succeed")
}

func TestAnchorLock_Acquire_Contention(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewAnchorLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "batch-1", 5*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = lock.Acquire(ctx, "batch-1", 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire should be rejected while held")
}

func TestAnchorLock_DifferentBatchesIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewAnchorLock(client)
	ctx := context.Background()

	ok1, err := lock.Acquire(ctx, "batch-A", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok1)

	ok2, err := lock.Acquire(ctx, "batch-B", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok2, "locks are per batch")
}

func TestAnchorLock_ReleaseAllowsReacquire(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewAnchorLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "batch-1", 5*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, lock.Release(ctx, "batch-1"))

	ok, err = lock.Acquire(ctx, "batch-1", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released lock should be acquirable again")
}

func TestAnchorLock_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewAnchorLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "batch-1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// A crashed holder: TTL elapses without release.
	s.FastForward(2 * time.Minute)

	ok, err = lock.Acquire(ctx, "batch-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired lock should be acquirable")
}
