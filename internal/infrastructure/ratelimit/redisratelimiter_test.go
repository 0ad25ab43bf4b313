package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestAllowWithinLimit(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))
	cfg := Config{PerMinute: 5}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestKeysAreIndependent(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))
	cfg := Config{PerMinute: 1}
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "login:5.6.7.8", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestZeroLimitDisablesWindow(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow(ctx, "open", Config{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestResetClearsWindows(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))
	cfg := Config{PerMinute: 1}
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	allowed, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "login:1.2.3.4"))

	allowed, err = limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRemainingCountsCurrentWindow(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))
	cfg := Config{PerMinute: 10}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
		require.NoError(t, err)
	}

	count, err := limiter.Remaining(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
