package usecases

import (
	"context"

	"aula/internal/domain/notification"
	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

// PaymentFailedCommand carries an invoice.payment_failed event.
type PaymentFailedCommand struct {
	ProviderInvoiceID  string
	ProviderCustomerID string
}

// PaymentFailedUseCase notifies the user about a failed charge. Access is
// not revoked here; the grace period lives in the provider keeping the
// subscription status until it cancels on its own.
type PaymentFailedUseCase struct {
	userRepo user.Repository
	notifier Notifier
	logger   logger.Interface
}

// NewPaymentFailedUseCase creates a new payment failed use case.
func NewPaymentFailedUseCase(
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *PaymentFailedUseCase {
	return &PaymentFailedUseCase{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute executes the payment failed use case.
func (uc *PaymentFailedUseCase) Execute(ctx context.Context, cmd PaymentFailedCommand) error {
	owner, err := uc.userRepo.GetByProviderCustomerID(ctx, cmd.ProviderCustomerID)
	if err != nil || owner == nil {
		uc.logger.Warnw("payment failure for unknown customer, acknowledging",
			"provider_customer_id", cmd.ProviderCustomerID,
			"provider_invoice_id", cmd.ProviderInvoiceID,
			"error", err,
		)
		return nil
	}

	if uc.notifier != nil {
		content := "We could not process your last payment. Please review your payment method; access continues during the retry window."
		if err := uc.notifier.NotifyUser(ctx, owner.ID(), notification.TypePaymentFailed, "Payment failed", content); err != nil {
			uc.logger.Warnw("failed to emit payment failure notification", "user_id", owner.ID(), "error", err)
		}
	}

	uc.logger.Infow("payment failure notified",
		"user_id", owner.ID(),
		"provider_invoice_id", cmd.ProviderInvoiceID,
	)
	return nil
}
