package user

import (
	"time"

	"aula/internal/domain/shared/events"
)

const (
	EventTypeUserCreated        = "user.created"
	EventTypeUserRoleChanged    = "user.role_changed"
	EventTypeUserCustomerLinked = "user.customer_linked"
)

// UserCreatedEvent is recorded when a user aggregate is created.
type UserCreatedEvent struct {
	events.BaseEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewUserCreatedEvent creates a UserCreatedEvent.
func NewUserCreatedEvent(uuid, email string, role Role) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: uuid,
			EventType:   EventTypeUserCreated,
			OccurredAt:  time.Now().UTC(),
		},
		Email: email,
		Role:  role,
	}
}

// UserRoleChangedEvent is recorded when the stored role record changes.
// Live role watchers re-derive permissions when they observe it.
type UserRoleChangedEvent struct {
	events.BaseEvent
	PreviousRole Role `json:"previous_role"`
	NewRole      Role `json:"new_role"`
}

// NewUserRoleChangedEvent creates a UserRoleChangedEvent.
func NewUserRoleChangedEvent(uuid string, previous, next Role) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: uuid,
			EventType:   EventTypeUserRoleChanged,
			OccurredAt:  time.Now().UTC(),
		},
		PreviousRole: previous,
		NewRole:      next,
	}
}

// UserCustomerLinkedEvent is recorded when a payment-provider customer id
// is linked to the user.
type UserCustomerLinkedEvent struct {
	events.BaseEvent
	CustomerID string `json:"customer_id"`
}

// NewUserCustomerLinkedEvent creates a UserCustomerLinkedEvent.
func NewUserCustomerLinkedEvent(uuid, customerID string) *UserCustomerLinkedEvent {
	return &UserCustomerLinkedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: uuid,
			EventType:   EventTypeUserCustomerLinked,
			OccurredAt:  time.Now().UTC(),
		},
		CustomerID: customerID,
	}
}
