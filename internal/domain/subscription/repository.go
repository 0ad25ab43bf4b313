package subscription

import (
	"context"
	"time"
)

// Repository defines persistence operations for the subscription aggregate.
type Repository interface {
	// Create persists a new subscription record and assigns its ID.
	Create(ctx context.Context, s *Subscription) error

	// Update persists changes to an existing subscription record.
	Update(ctx context.Context, s *Subscription) error

	// GetByUserID retrieves the newest subscription record for a user.
	// Returns a not found error when the user has no record.
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)

	// GetByProviderSubscriptionID retrieves a record by the payment
	// provider's subscription id.
	GetByProviderSubscriptionID(ctx context.Context, providerSubscriptionID string) (*Subscription, error)

	// ListLapsed returns up to limit records whose status still grants
	// entitlement but whose current period ended before asOf.
	ListLapsed(ctx context.Context, asOf time.Time, limit int) ([]*Subscription, error)
}

// PaymentRecordRepository defines persistence for the append-only payment log.
type PaymentRecordRepository interface {
	// Create appends a payment record.
	Create(ctx context.Context, p *PaymentRecord) error

	// GetByProviderInvoiceID retrieves a payment record by invoice id.
	GetByProviderInvoiceID(ctx context.Context, invoiceID string) (*PaymentRecord, error)

	// ListByUser returns a user's payment records, newest first.
	ListByUser(ctx context.Context, userID uint, limit int) ([]*PaymentRecord, error)
}

// WebhookEventRepository is the idempotency ledger for provider events.
type WebhookEventRepository interface {
	// Record inserts a ledger entry for the event id. It returns false
	// with a nil error when the id was already recorded, which callers
	// must treat as "duplicate delivery, skip the event".
	Record(ctx context.Context, e *WebhookEvent) (bool, error)

	// WasProcessed reports whether the event id is already in the ledger.
	WasProcessed(ctx context.Context, eventID string) (bool, error)
}
