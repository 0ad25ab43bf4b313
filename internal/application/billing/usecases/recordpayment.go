package usecases

import (
	"context"
	"fmt"
	"time"

	"aula/internal/domain/notification"
	"aula/internal/domain/subscription"
	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// RecordPaymentCommand carries an invoice.payment_succeeded event.
type RecordPaymentCommand struct {
	ProviderInvoiceID      string
	ProviderSubscriptionID string
	ProviderCustomerID     string
	AmountCents            int64
	Currency               string
	PaidAt                 time.Time
}

// RecordPaymentUseCase appends a payment record and stamps last-payment
// metadata on the subscription. It never changes the subscription status;
// that is driven by the subscription event family.
type RecordPaymentUseCase struct {
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	paymentRepo      subscription.PaymentRecordRepository
	notifier         Notifier
	logger           logger.Interface
}

// NewRecordPaymentUseCase creates a new record payment use case.
func NewRecordPaymentUseCase(
	userRepo user.Repository,
	subscriptionRepo subscription.Repository,
	paymentRepo subscription.PaymentRecordRepository,
	notifier Notifier,
	logger logger.Interface,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute executes the record payment use case.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) error {
	if cmd.ProviderInvoiceID == "" {
		return errors.NewValidationError("provider invoice ID is required")
	}

	existing, err := uc.paymentRepo.GetByProviderInvoiceID(ctx, cmd.ProviderInvoiceID)
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check invoice: %w", err)
	}
	if existing != nil {
		uc.logger.Infow("invoice already recorded", "provider_invoice_id", cmd.ProviderInvoiceID)
		return nil
	}

	userID, sub, err := uc.resolveOwner(ctx, cmd)
	if err != nil {
		return err
	}

	record, err := subscription.NewPaymentRecord(
		userID,
		cmd.ProviderSubscriptionID,
		cmd.ProviderInvoiceID,
		cmd.AmountCents,
		cmd.Currency,
		cmd.PaidAt,
	)
	if err != nil {
		return errors.NewValidationError("invalid payment data", err.Error())
	}

	if err := uc.paymentRepo.Create(ctx, record); err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Infow("invoice recorded by a concurrent delivery", "provider_invoice_id", cmd.ProviderInvoiceID)
			return nil
		}
		return fmt.Errorf("failed to record payment: %w", err)
	}

	if sub != nil {
		sub.RecordPayment(cmd.PaidAt)
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Warnw("failed to stamp last payment on subscription",
				"provider_subscription_id", cmd.ProviderSubscriptionID, "error", err)
		}
	}

	if uc.notifier != nil {
		content := fmt.Sprintf("We received your payment of **%.2f %s**. Thank you!",
			float64(cmd.AmountCents)/100, cmd.Currency)
		if err := uc.notifier.NotifyUser(ctx, userID, notification.TypePaymentSucceeded, "Payment received", content); err != nil {
			uc.logger.Warnw("failed to emit payment notification", "user_id", userID, "error", err)
		}
	}

	uc.logger.Infow("payment recorded",
		"user_id", userID,
		"provider_invoice_id", cmd.ProviderInvoiceID,
		"amount_cents", cmd.AmountCents,
		"currency", cmd.Currency,
	)
	return nil
}

func (uc *RecordPaymentUseCase) resolveOwner(ctx context.Context, cmd RecordPaymentCommand) (uint, *subscription.Subscription, error) {
	if cmd.ProviderSubscriptionID != "" {
		sub, err := uc.subscriptionRepo.GetByProviderSubscriptionID(ctx, cmd.ProviderSubscriptionID)
		if err != nil && !errors.IsNotFoundError(err) {
			return 0, nil, fmt.Errorf("failed to load subscription: %w", err)
		}
		if sub != nil {
			return sub.UserID(), sub, nil
		}
	}

	owner, err := uc.userRepo.GetByProviderCustomerID(ctx, cmd.ProviderCustomerID)
	if err != nil || owner == nil {
		uc.logger.Warnw("no owner for invoice yet",
			"provider_invoice_id", cmd.ProviderInvoiceID,
			"provider_customer_id", cmd.ProviderCustomerID,
			"error", err,
		)
		return 0, nil, fmt.Errorf("no user for provider customer %s", cmd.ProviderCustomerID)
	}
	return owner.ID(), nil, nil
}
