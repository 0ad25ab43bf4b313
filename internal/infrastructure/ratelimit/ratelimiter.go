// Package ratelimit provides a redis-backed sliding window rate limiter
// used to throttle credential endpoints.
package ratelimit

import (
	"context"
	"time"
)

// Config caps request rates over sliding windows. A zero limit disables
// that window.
type Config struct {
	PerMinute int
	PerHour   int
}

// Limiter decides whether a keyed request may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	Remaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
