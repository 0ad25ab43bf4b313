package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/domain/subscription"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// CancelSubscriptionCommand carries a subscription.deleted event.
type CancelSubscriptionCommand struct {
	ProviderSubscriptionID string
}

// CancelSubscriptionUseCase transitions a subscription to cancelled and
// clears the cached entitlement. The cancelled notification is emitted only
// on the transition, so replays and duplicates stay silent.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	entitlements     EntitlementInvalidator
	notifier         Notifier
	logger           logger.Interface
}

// NewCancelSubscriptionUseCase creates a new cancel subscription use case.
func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	entitlements EntitlementInvalidator,
	notifier Notifier,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		entitlements:     entitlements,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute executes the cancel subscription use case.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) error {
	if cmd.ProviderSubscriptionID == "" {
		return errors.NewValidationError("provider subscription ID is required")
	}

	sub, err := uc.subscriptionRepo.GetByProviderSubscriptionID(ctx, cmd.ProviderSubscriptionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("delete event for unknown subscription, acknowledging",
				"provider_subscription_id", cmd.ProviderSubscriptionID)
			return nil
		}
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		uc.logger.Warnw("delete event for unknown subscription, acknowledging",
			"provider_subscription_id", cmd.ProviderSubscriptionID)
		return nil
	}

	sub.Cancel()
	if len(sub.Events()) == 0 {
		uc.logger.Infow("subscription already cancelled",
			"provider_subscription_id", cmd.ProviderSubscriptionID)
		return nil
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if uc.entitlements != nil {
		if err := uc.entitlements.Invalidate(ctx, sub.UserID()); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", sub.UserID(), "error", err)
		}
	}

	if uc.notifier != nil {
		content := "Your subscription has been cancelled. You keep panel access, but paid content is locked until you subscribe again."
		if err := uc.notifier.NotifyUser(ctx, sub.UserID(), notification.TypeSubscriptionCancelled, "Subscription cancelled", content); err != nil {
			uc.logger.Warnw("failed to emit cancellation notification", "user_id", sub.UserID(), "error", err)
		}
	}

	uc.logger.Infow("subscription cancelled",
		"user_id", sub.UserID(),
		"provider_subscription_id", cmd.ProviderSubscriptionID,
	)
	return nil
}
