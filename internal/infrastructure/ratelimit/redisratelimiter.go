package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements Limiter with per-window sorted sets. Each request
// is a member scored by its nanosecond timestamp; members older than the
// window are trimmed before counting.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) Limiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, cfg Config) (bool, error) {
	now := time.Now()

	windows := []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, cfg.PerMinute},
		{time.Hour, cfg.PerHour},
	}

	for _, window := range windows {
		if window.limit <= 0 {
			continue
		}

		allowed, err := l.checkWindow(ctx, key, window.duration, window.limit, now)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func (l *RedisLimiter) checkWindow(ctx context.Context, key string, window time.Duration, limit int, now time.Time) (bool, error) {
	redisKey := l.windowKey(key, window)
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(limit), nil
}

func (l *RedisLimiter) Remaining(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := l.windowKey(key, window)
	windowStart := time.Now().Add(-window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val(), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	keys := []string{
		l.windowKey(key, time.Minute),
		l.windowKey(key, time.Hour),
	}
	return l.client.Del(ctx, keys...).Err()
}

func (l *RedisLimiter) windowKey(key string, window time.Duration) string {
	return fmt.Sprintf("ratelimit:%s:%s", key, window)
}
