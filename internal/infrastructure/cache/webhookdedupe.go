package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const webhookDedupePrefix = "billing:webhook:event:"

// WebhookDedupe is the Redis fast path for webhook idempotency. A claim is a
// SETNX with TTL; the database ledger remains authoritative when Redis is
// unavailable or the key has expired.
type WebhookDedupe struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWebhookDedupe(client *redis.Client, ttl time.Duration) *WebhookDedupe {
	return &WebhookDedupe{
		client: client,
		ttl:    ttl,
	}
}

// TryClaim atomically claims an event id. It returns false when another
// delivery already holds the claim.
func (d *WebhookDedupe) TryClaim(ctx context.Context, eventID string) (bool, error) {
	claimed, err := d.client.SetNX(ctx, webhookDedupePrefix+eventID, "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim webhook event: %w", err)
	}
	return claimed, nil
}

// Release frees a claim after a failed processing attempt so the provider's
// retry can be processed.
func (d *WebhookDedupe) Release(ctx context.Context, eventID string) error {
	if err := d.client.Del(ctx, webhookDedupePrefix+eventID).Err(); err != nil {
		return fmt.Errorf("failed to release webhook event claim: %w", err)
	}
	return nil
}
