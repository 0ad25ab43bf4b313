package subscription

import (
	"fmt"
	"time"
)

// WebhookEvent is the idempotency ledger entry for a processed provider
// event. Delivery is at-least-once; an event id already present in the
// ledger means the whole event must be skipped.
type WebhookEvent struct {
	id          uint
	eventID     string
	eventType   string
	processedAt time.Time
}

// NewWebhookEvent creates a ledger entry for a provider event.
func NewWebhookEvent(eventID, eventType string) (*WebhookEvent, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if eventType == "" {
		return nil, fmt.Errorf("event type is required")
	}
	return &WebhookEvent{
		eventID:     eventID,
		eventType:   eventType,
		processedAt: time.Now().UTC(),
	}, nil
}

// ReconstructWebhookEvent reconstructs a ledger entry from persistence.
func ReconstructWebhookEvent(id uint, eventID, eventType string, processedAt time.Time) (*WebhookEvent, error) {
	if id == 0 {
		return nil, fmt.Errorf("webhook event ID cannot be zero")
	}
	return &WebhookEvent{
		id:          id,
		eventID:     eventID,
		eventType:   eventType,
		processedAt: processedAt,
	}, nil
}

// ID returns the ledger row id.
func (w *WebhookEvent) ID() uint { return w.id }

// EventID returns the provider's unique event id.
func (w *WebhookEvent) EventID() string { return w.eventID }

// EventType returns the provider event type.
func (w *WebhookEvent) EventType() string { return w.eventType }

// ProcessedAt returns when the event was first processed.
func (w *WebhookEvent) ProcessedAt() time.Time { return w.processedAt }
