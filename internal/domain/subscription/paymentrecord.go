package subscription

import (
	"fmt"
	"time"
)

// PaymentRecord is an append-only record of a successful provider payment.
type PaymentRecord struct {
	id                     uint
	userID                 uint
	providerSubscriptionID string
	providerInvoiceID      string
	amountCents            int64
	currency               string
	paidAt                 time.Time
	createdAt              time.Time
}

// NewPaymentRecord creates a payment record from an
// invoice.payment_succeeded event.
func NewPaymentRecord(
	userID uint,
	providerSubscriptionID string,
	providerInvoiceID string,
	amountCents int64,
	currency string,
	paidAt time.Time,
) (*PaymentRecord, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if providerInvoiceID == "" {
		return nil, fmt.Errorf("provider invoice ID is required")
	}
	if amountCents < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}

	return &PaymentRecord{
		userID:                 userID,
		providerSubscriptionID: providerSubscriptionID,
		providerInvoiceID:      providerInvoiceID,
		amountCents:            amountCents,
		currency:               currency,
		paidAt:                 paidAt.UTC(),
		createdAt:              time.Now().UTC(),
	}, nil
}

// ReconstructPaymentRecord reconstructs a payment record from persistence.
func ReconstructPaymentRecord(
	id, userID uint,
	providerSubscriptionID, providerInvoiceID string,
	amountCents int64,
	currency string,
	paidAt, createdAt time.Time,
) (*PaymentRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment record ID cannot be zero")
	}
	return &PaymentRecord{
		id:                     id,
		userID:                 userID,
		providerSubscriptionID: providerSubscriptionID,
		providerInvoiceID:      providerInvoiceID,
		amountCents:            amountCents,
		currency:               currency,
		paidAt:                 paidAt,
		createdAt:              createdAt,
	}, nil
}

// ID returns the record ID.
func (p *PaymentRecord) ID() uint { return p.id }

// SetID assigns the ID once, after the initial insert.
func (p *PaymentRecord) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment record ID cannot be zero")
	}
	p.id = id
	return nil
}

// UserID returns the paying user id.
func (p *PaymentRecord) UserID() uint { return p.userID }

// ProviderSubscriptionID returns the subscription the payment belongs to.
func (p *PaymentRecord) ProviderSubscriptionID() string { return p.providerSubscriptionID }

// ProviderInvoiceID returns the provider invoice id.
func (p *PaymentRecord) ProviderInvoiceID() string { return p.providerInvoiceID }

// AmountCents returns the paid amount in minor units.
func (p *PaymentRecord) AmountCents() int64 { return p.amountCents }

// Currency returns the ISO currency code.
func (p *PaymentRecord) Currency() string { return p.currency }

// PaidAt returns when the provider settled the payment.
func (p *PaymentRecord) PaidAt() time.Time { return p.paidAt }

// CreatedAt returns the record creation timestamp.
func (p *PaymentRecord) CreatedAt() time.Time { return p.createdAt }
