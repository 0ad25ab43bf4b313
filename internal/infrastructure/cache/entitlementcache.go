package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"aula/internal/shared/logger"
)

const entitlementPrefix = "access:entitlement:"

// EntitlementCache caches the per-user entitlement flag in Redis. A miss is
// reported with found=false; callers fall back to the subscription store.
type EntitlementCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewEntitlementCache(client *redis.Client, ttl time.Duration, log logger.Interface) *EntitlementCache {
	return &EntitlementCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *EntitlementCache) key(userID uint) string {
	return entitlementPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (c *EntitlementCache) Get(ctx context.Context, userID uint) (entitled bool, found bool, err error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to read entitlement cache: %w", err)
	}
	return val == "1", true, nil
}

func (c *EntitlementCache) Set(ctx context.Context, userID uint, entitled bool) error {
	val := "0"
	if entitled {
		val = "1"
	}
	if err := c.client.Set(ctx, c.key(userID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write entitlement cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached flag so the next check reads the subscription
// store. Billing events call this after every subscription change.
func (c *EntitlementCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement cache: %w", err)
	}
	c.logger.Debugw("entitlement cache invalidated", "user_id", userID)
	return nil
}
