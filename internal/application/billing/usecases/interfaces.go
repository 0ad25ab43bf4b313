// Package usecases implements the webhook-driven subscription reconciler:
// one use case per provider event family, plus the dispatcher that verifies,
// deduplicates and routes raw deliveries.
package usecases

import (
	"context"

	"aula/internal/domain/notification"
)

// Notifier emits a user-facing notification record. Implemented by the
// notification service; failures are logged, never fatal to the event.
type Notifier interface {
	NotifyUser(ctx context.Context, userID uint, notifType notification.Type, title, content string) error
}

// EntitlementInvalidator drops a user's cached entitlement flag so the next
// resolution re-reads the subscription record.
type EntitlementInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}

// EventDedupe is the fast-path duplicate filter in front of the durable
// event ledger. TryClaim returns false when the event id is already claimed;
// Release frees a claim after a processing failure so the redelivery can
// run.
type EventDedupe interface {
	TryClaim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}
