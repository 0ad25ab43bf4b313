// Package provider models the payment provider's webhook boundary: the
// signed event envelope and the payload objects the reconciler consumes.
package provider

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types delivered by the provider that the reconciler handles.
const (
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventPaymentSucceeded    = "invoice.payment_succeeded"
	EventPaymentFailed       = "invoice.payment_failed"
	EventCheckoutCompleted   = "checkout.session.completed"
)

// Event is the parsed webhook envelope. Data holds the raw event object;
// callers unmarshal it through the typed accessors.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Created int64           `json:"created"`
	Data    json.RawMessage `json:"-"`
}

type eventEnvelope struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// ParseEvent decodes the raw webhook body into an event envelope.
func ParseEvent(raw []byte) (*Event, error) {
	var env eventEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed event body: %w", err)
	}
	if env.ID == "" {
		return nil, fmt.Errorf("event has no id")
	}
	if env.Type == "" {
		return nil, fmt.Errorf("event %s has no type", env.ID)
	}
	return &Event{
		ID:      env.ID,
		Type:    env.Type,
		Created: env.Created,
		Data:    env.Data.Object,
	}, nil
}

// CreatedAt returns the provider-side creation time of the event.
func (e *Event) CreatedAt() time.Time {
	return time.Unix(e.Created, 0).UTC()
}

// SubscriptionObject is the subscription payload carried by the
// customer.subscription.* event family.
type SubscriptionObject struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	Status           string `json:"status"`
	PlanID           string `json:"plan_id"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}

// PeriodEnd returns the paid-period end as a time.
func (s SubscriptionObject) PeriodEnd() time.Time {
	return time.Unix(s.CurrentPeriodEnd, 0).UTC()
}

// Subscription unmarshals the event object as a subscription.
func (e *Event) Subscription() (SubscriptionObject, error) {
	var obj SubscriptionObject
	if err := json.Unmarshal(e.Data, &obj); err != nil {
		return obj, fmt.Errorf("event %s: malformed subscription object: %w", e.ID, err)
	}
	if obj.ID == "" {
		return obj, fmt.Errorf("event %s: subscription object has no id", e.ID)
	}
	return obj, nil
}

// InvoiceObject is the invoice payload carried by the invoice.* event family.
type InvoiceObject struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	Subscription string `json:"subscription"`
	AmountPaid   int64  `json:"amount_paid"`
	Currency     string `json:"currency"`
	Created      int64  `json:"created"`
}

// PaidAt returns the invoice creation time, used as the payment instant.
func (i InvoiceObject) PaidAt() time.Time {
	return time.Unix(i.Created, 0).UTC()
}

// Invoice unmarshals the event object as an invoice.
func (e *Event) Invoice() (InvoiceObject, error) {
	var obj InvoiceObject
	if err := json.Unmarshal(e.Data, &obj); err != nil {
		return obj, fmt.Errorf("event %s: malformed invoice object: %w", e.ID, err)
	}
	if obj.ID == "" {
		return obj, fmt.Errorf("event %s: invoice object has no id", e.ID)
	}
	return obj, nil
}

// CheckoutSessionObject is the payload of checkout.session.completed.
// ClientReferenceID carries the platform user id set at checkout creation.
type CheckoutSessionObject struct {
	ID                string `json:"id"`
	Customer          string `json:"customer"`
	ClientReferenceID string `json:"client_reference_id"`
	CustomerEmail     string `json:"customer_email"`
}

// CheckoutSession unmarshals the event object as a checkout session.
func (e *Event) CheckoutSession() (CheckoutSessionObject, error) {
	var obj CheckoutSessionObject
	if err := json.Unmarshal(e.Data, &obj); err != nil {
		return obj, fmt.Errorf("event %s: malformed checkout session object: %w", e.ID, err)
	}
	if obj.Customer == "" {
		return obj, fmt.Errorf("event %s: checkout session has no customer", e.ID)
	}
	return obj, nil
}
