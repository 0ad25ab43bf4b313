package subscription

import (
	"time"

	"aula/internal/domain/shared/events"
	vo "aula/internal/domain/subscription/valueobjects"
)

const (
	EventTypeSubscriptionUpdated   = "subscription.updated"
	EventTypeSubscriptionCancelled = "subscription.cancelled"
	EventTypePaymentRecorded       = "subscription.payment_recorded"
)

// SubscriptionUpdatedEvent is recorded when a provider event changes the
// subscription state.
type SubscriptionUpdatedEvent struct {
	events.BaseEvent
	PreviousStatus vo.Status `json:"previous_status"`
	NewStatus      vo.Status `json:"new_status"`
	PlanID         string    `json:"plan_id"`
}

// NewSubscriptionUpdatedEvent creates a SubscriptionUpdatedEvent.
func NewSubscriptionUpdatedEvent(providerSubscriptionID string, previous, next vo.Status, planID string) *SubscriptionUpdatedEvent {
	return &SubscriptionUpdatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: providerSubscriptionID,
			EventType:   EventTypeSubscriptionUpdated,
			OccurredAt:  time.Now().UTC(),
		},
		PreviousStatus: previous,
		NewStatus:      next,
		PlanID:         planID,
	}
}

// SubscriptionCancelledEvent is recorded when the provider deletes the
// subscription.
type SubscriptionCancelledEvent struct {
	events.BaseEvent
	PreviousStatus vo.Status `json:"previous_status"`
}

// NewSubscriptionCancelledEvent creates a SubscriptionCancelledEvent.
func NewSubscriptionCancelledEvent(providerSubscriptionID string, previous vo.Status) *SubscriptionCancelledEvent {
	return &SubscriptionCancelledEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: providerSubscriptionID,
			EventType:   EventTypeSubscriptionCancelled,
			OccurredAt:  time.Now().UTC(),
		},
		PreviousStatus: previous,
	}
}
