// Package subscription contains the subscription aggregate and the billing
// entities the webhook reconciler maintains. A subscription record is
// created on first successful checkout and only ever status-transitioned,
// never deleted.
package subscription

import (
	"fmt"
	"time"

	"aula/internal/domain/shared/events"
	vo "aula/internal/domain/subscription/valueobjects"
)

// Subscription represents the subscription aggregate root.
type Subscription struct {
	id                     uint
	userID                 uint
	status                 vo.Status
	planID                 string
	providerCustomerID     string
	providerSubscriptionID string
	currentPeriodEnd       time.Time
	lastPaymentAt          *time.Time
	metadata               map[string]any
	version                int
	createdAt              time.Time
	updatedAt              time.Time
	events                 []events.DomainEvent
}

// NewSubscription creates a subscription from the first provider event that
// references it.
func NewSubscription(
	userID uint,
	status vo.Status,
	planID string,
	providerCustomerID string,
	providerSubscriptionID string,
	currentPeriodEnd time.Time,
) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if providerSubscriptionID == "" {
		return nil, fmt.Errorf("provider subscription ID is required")
	}

	now := time.Now().UTC()
	s := &Subscription{
		userID:                 userID,
		status:                 status,
		planID:                 planID,
		providerCustomerID:     providerCustomerID,
		providerSubscriptionID: providerSubscriptionID,
		currentPeriodEnd:       currentPeriodEnd,
		metadata:               make(map[string]any),
		version:                1,
		createdAt:              now,
		updatedAt:              now,
	}

	s.recordEvent(NewSubscriptionUpdatedEvent(providerSubscriptionID, vo.StatusNone, status, planID))
	return s, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	id, userID uint,
	status vo.Status,
	planID string,
	providerCustomerID string,
	providerSubscriptionID string,
	currentPeriodEnd time.Time,
	lastPaymentAt *time.Time,
	metadata map[string]any,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Subscription{
		id:                     id,
		userID:                 userID,
		status:                 status,
		planID:                 planID,
		providerCustomerID:     providerCustomerID,
		providerSubscriptionID: providerSubscriptionID,
		currentPeriodEnd:       currentPeriodEnd,
		lastPaymentAt:          lastPaymentAt,
		metadata:               metadata,
		version:                version,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}

// ID returns the subscription ID.
func (s *Subscription) ID() uint { return s.id }

// SetID assigns the ID once, after the initial insert.
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// UserID returns the owning user id.
func (s *Subscription) UserID() uint { return s.userID }

// Status returns the subscription status.
func (s *Subscription) Status() vo.Status { return s.status }

// PlanID returns the plan/tier identifier.
func (s *Subscription) PlanID() string { return s.planID }

// ProviderCustomerID returns the payment-provider customer id.
func (s *Subscription) ProviderCustomerID() string { return s.providerCustomerID }

// ProviderSubscriptionID returns the payment-provider subscription id.
func (s *Subscription) ProviderSubscriptionID() string { return s.providerSubscriptionID }

// CurrentPeriodEnd returns the end of the paid period.
func (s *Subscription) CurrentPeriodEnd() time.Time { return s.currentPeriodEnd }

// LastPaymentAt returns when the last successful payment was recorded.
func (s *Subscription) LastPaymentAt() *time.Time { return s.lastPaymentAt }

// Metadata returns the metadata map.
func (s *Subscription) Metadata() map[string]any { return s.metadata }

// SetMetadata stores a metadata entry; a nil value removes the key.
func (s *Subscription) SetMetadata(key string, value any) {
	if value == nil {
		delete(s.metadata, key)
		return
	}
	s.metadata[key] = value
}

// Version returns the optimistic-lock version.
func (s *Subscription) Version() int { return s.version }

// CreatedAt returns the creation timestamp.
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last update timestamp.
func (s *Subscription) UpdatedAt() time.Time { return s.updatedAt }

// ApplyProviderUpdate transitions the record to the state carried by a
// subscription.created/updated event. Transitions follow provider events,
// not time: past_due may revert to active on a later successful payment.
func (s *Subscription) ApplyProviderUpdate(status vo.Status, planID string, currentPeriodEnd time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid subscription status: %s", status)
	}

	previous := s.status
	changed := previous != status || s.planID != planID || !s.currentPeriodEnd.Equal(currentPeriodEnd)

	s.status = status
	if planID != "" {
		s.planID = planID
	}
	s.currentPeriodEnd = currentPeriodEnd
	s.updatedAt = time.Now().UTC()

	if changed {
		s.recordEvent(NewSubscriptionUpdatedEvent(s.providerSubscriptionID, previous, status, s.planID))
	}
	return nil
}

// Cancel transitions the record to cancelled in response to a
// subscription.deleted event. Cancelling an already cancelled record is a
// no-op so duplicate deliveries stay idempotent above the event ledger.
func (s *Subscription) Cancel() {
	if s.status == vo.StatusCancelled {
		return
	}

	previous := s.status
	s.status = vo.StatusCancelled
	s.updatedAt = time.Now().UTC()
	s.recordEvent(NewSubscriptionCancelledEvent(s.providerSubscriptionID, previous))
}

// RecordPayment updates last-payment metadata on invoice.payment_succeeded.
// It does not change the status; that is driven by the subscription-event
// family.
func (s *Subscription) RecordPayment(paidAt time.Time) {
	paid := paidAt.UTC()
	s.lastPaymentAt = &paid
	s.updatedAt = time.Now().UTC()
}

// IsEntitling reports whether this record grants paid-content access at
// the given instant: an entitling status whose period end is in the future.
func (s *Subscription) IsEntitling(now time.Time) bool {
	return s.status.IsEntitling() && s.currentPeriodEnd.After(now)
}

// Events returns and clears the recorded domain events.
func (s *Subscription) Events() []events.DomainEvent {
	evts := s.events
	s.events = nil
	return evts
}

func (s *Subscription) recordEvent(event events.DomainEvent) {
	s.events = append(s.events, event)
}
