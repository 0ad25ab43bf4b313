package usecases

import (
	"context"
	"fmt"
	"strings"

	"aula/internal/application/billing/provider"
	"aula/internal/domain/subscription"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// ProcessWebhookEventUseCase is the reconciler's front door: it verifies the
// delivery signature, filters duplicates against the redis fast path and the
// durable ledger, and routes the event to its family use case.
//
// Delivery is at-least-once; a non-nil return means the HTTP layer must
// answer retryable so the provider redelivers.
type ProcessWebhookEventUseCase struct {
	verifier      *provider.SignatureVerifier
	webhookEvents subscription.WebhookEventRepository
	dedupe        EventDedupe
	upsert        *UpsertSubscriptionUseCase
	cancel        *CancelSubscriptionUseCase
	recordPayment *RecordPaymentUseCase
	paymentFailed *PaymentFailedUseCase
	linkCustomer  *LinkCustomerUseCase
	logger        logger.Interface
}

// NewProcessWebhookEventUseCase creates the webhook dispatcher. dedupe is
// optional; without it the ledger alone filters duplicates.
func NewProcessWebhookEventUseCase(
	verifier *provider.SignatureVerifier,
	webhookEvents subscription.WebhookEventRepository,
	dedupe EventDedupe,
	upsert *UpsertSubscriptionUseCase,
	cancel *CancelSubscriptionUseCase,
	recordPayment *RecordPaymentUseCase,
	paymentFailed *PaymentFailedUseCase,
	linkCustomer *LinkCustomerUseCase,
	logger logger.Interface,
) *ProcessWebhookEventUseCase {
	return &ProcessWebhookEventUseCase{
		verifier:      verifier,
		webhookEvents: webhookEvents,
		dedupe:        dedupe,
		upsert:        upsert,
		cancel:        cancel,
		recordPayment: recordPayment,
		paymentFailed: paymentFailed,
		linkCustomer:  linkCustomer,
		logger:        logger,
	}
}

// Execute verifies and processes one raw webhook delivery.
func (uc *ProcessWebhookEventUseCase) Execute(ctx context.Context, body []byte, signatureHeader string) error {
	if err := uc.verifier.Verify(body, signatureHeader); err != nil {
		uc.logger.Warnw("webhook signature rejected", "error", err)
		return errors.NewValidationError("invalid webhook signature", err.Error())
	}

	evt, err := provider.ParseEvent(body)
	if err != nil {
		uc.logger.Warnw("malformed webhook event", "error", err)
		return errors.NewValidationError("malformed webhook event", err.Error())
	}

	log := uc.logger.With("event_id", evt.ID, "event_type", evt.Type)

	claimed := false
	if uc.dedupe != nil {
		ok, err := uc.dedupe.TryClaim(ctx, evt.ID)
		if err != nil {
			log.Warnw("event dedupe unavailable, relying on ledger", "error", err)
		} else if !ok {
			log.Infow("duplicate delivery filtered by fast path")
			return nil
		} else {
			claimed = true
		}
	}

	processed, err := uc.webhookEvents.WasProcessed(ctx, evt.ID)
	if err != nil {
		uc.releaseClaim(ctx, claimed, evt.ID)
		return fmt.Errorf("failed to check event ledger: %w", err)
	}
	if processed {
		log.Infow("duplicate delivery filtered by ledger")
		return nil
	}

	if err := uc.dispatch(ctx, evt); err != nil {
		uc.releaseClaim(ctx, claimed, evt.ID)
		log.Errorw("event processing failed, provider will redeliver", "error", err)
		return err
	}

	ledgerEntry, err := subscription.NewWebhookEvent(evt.ID, evt.Type)
	if err != nil {
		uc.releaseClaim(ctx, claimed, evt.ID)
		return fmt.Errorf("failed to build ledger entry: %w", err)
	}
	inserted, err := uc.webhookEvents.Record(ctx, ledgerEntry)
	if err != nil {
		uc.releaseClaim(ctx, claimed, evt.ID)
		return fmt.Errorf("failed to record event in ledger: %w", err)
	}
	if !inserted {
		log.Infow("event recorded by a concurrent delivery")
	}

	log.Infow("webhook event processed")
	return nil
}

func (uc *ProcessWebhookEventUseCase) dispatch(ctx context.Context, evt *provider.Event) error {
	// The provider prefixes the subscription family with the object owner;
	// normalize so both spellings route identically.
	eventType := strings.TrimPrefix(evt.Type, "customer.")

	switch eventType {
	case "subscription.created", "subscription.updated":
		sub, err := evt.Subscription()
		if err != nil {
			return err
		}
		return uc.upsert.Execute(ctx, UpsertSubscriptionCommand{
			ProviderSubscriptionID: sub.ID,
			ProviderCustomerID:     sub.Customer,
			Status:                 sub.Status,
			PlanID:                 sub.PlanID,
			CurrentPeriodEnd:       sub.PeriodEnd(),
		})

	case "subscription.deleted":
		sub, err := evt.Subscription()
		if err != nil {
			return err
		}
		return uc.cancel.Execute(ctx, CancelSubscriptionCommand{
			ProviderSubscriptionID: sub.ID,
		})

	case provider.EventPaymentSucceeded:
		inv, err := evt.Invoice()
		if err != nil {
			return err
		}
		return uc.recordPayment.Execute(ctx, RecordPaymentCommand{
			ProviderInvoiceID:      inv.ID,
			ProviderSubscriptionID: inv.Subscription,
			ProviderCustomerID:     inv.Customer,
			AmountCents:            inv.AmountPaid,
			Currency:               inv.Currency,
			PaidAt:                 inv.PaidAt(),
		})

	case provider.EventPaymentFailed:
		inv, err := evt.Invoice()
		if err != nil {
			return err
		}
		return uc.paymentFailed.Execute(ctx, PaymentFailedCommand{
			ProviderInvoiceID:  inv.ID,
			ProviderCustomerID: inv.Customer,
		})

	case provider.EventCheckoutCompleted:
		sess, err := evt.CheckoutSession()
		if err != nil {
			return err
		}
		return uc.linkCustomer.Execute(ctx, LinkCustomerCommand{
			ProviderCustomerID: sess.Customer,
			ClientReferenceID:  sess.ClientReferenceID,
			CustomerEmail:      sess.CustomerEmail,
		})

	default:
		uc.logger.Debugw("ignoring unhandled event type", "event_id", evt.ID, "event_type", evt.Type)
		return nil
	}
}

func (uc *ProcessWebhookEventUseCase) releaseClaim(ctx context.Context, claimed bool, eventID string) {
	if !claimed {
		return
	}
	if err := uc.dedupe.Release(ctx, eventID); err != nil {
		uc.logger.Warnw("failed to release event claim", "event_id", eventID, "error", err)
	}
}
