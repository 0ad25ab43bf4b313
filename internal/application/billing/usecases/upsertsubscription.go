package usecases

import (
	"context"
	"fmt"
	"time"

	"aula/internal/domain/notification"
	"aula/internal/domain/subscription"
	vo "aula/internal/domain/subscription/valueobjects"
	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// UpsertSubscriptionCommand carries the subscription state from a
// subscription.created or subscription.updated event.
type UpsertSubscriptionCommand struct {
	ProviderSubscriptionID string
	ProviderCustomerID     string
	Status                 string
	PlanID                 string
	CurrentPeriodEnd       time.Time
}

// UpsertSubscriptionUseCase creates or transitions the subscription record
// to the state the provider reports.
type UpsertSubscriptionUseCase struct {
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	entitlements     EntitlementInvalidator
	notifier         Notifier
	logger           logger.Interface
}

// NewUpsertSubscriptionUseCase creates a new upsert subscription use case.
func NewUpsertSubscriptionUseCase(
	userRepo user.Repository,
	subscriptionRepo subscription.Repository,
	entitlements EntitlementInvalidator,
	notifier Notifier,
	logger logger.Interface,
) *UpsertSubscriptionUseCase {
	return &UpsertSubscriptionUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		entitlements:     entitlements,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute executes the upsert subscription use case.
func (uc *UpsertSubscriptionUseCase) Execute(ctx context.Context, cmd UpsertSubscriptionCommand) error {
	if cmd.ProviderSubscriptionID == "" {
		return errors.NewValidationError("provider subscription ID is required")
	}

	status := vo.ParseStatus(cmd.Status)

	sub, err := uc.subscriptionRepo.GetByProviderSubscriptionID(ctx, cmd.ProviderSubscriptionID)
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to load subscription: %w", err)
	}

	if sub == nil || errors.IsNotFoundError(err) {
		return uc.create(ctx, cmd, status)
	}
	return uc.update(ctx, sub, cmd, status)
}

func (uc *UpsertSubscriptionUseCase) create(ctx context.Context, cmd UpsertSubscriptionCommand, status vo.Status) error {
	owner, err := uc.userRepo.GetByProviderCustomerID(ctx, cmd.ProviderCustomerID)
	if err != nil || owner == nil {
		// The checkout.session.completed event that links the customer may
		// not have landed yet; fail so the provider redelivers.
		uc.logger.Warnw("no user linked to provider customer yet",
			"provider_customer_id", cmd.ProviderCustomerID,
			"error", err,
		)
		return fmt.Errorf("no user for provider customer %s", cmd.ProviderCustomerID)
	}

	sub, err := subscription.NewSubscription(
		owner.ID(),
		status,
		cmd.PlanID,
		cmd.ProviderCustomerID,
		cmd.ProviderSubscriptionID,
		cmd.CurrentPeriodEnd,
	)
	if err != nil {
		return errors.NewValidationError("invalid subscription state", err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Infow("subscription already created by a concurrent delivery",
				"provider_subscription_id", cmd.ProviderSubscriptionID)
			return nil
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.afterChange(ctx, owner.ID(), status)

	uc.logger.Infow("subscription created",
		"user_id", owner.ID(),
		"provider_subscription_id", cmd.ProviderSubscriptionID,
		"status", status.String(),
	)
	return nil
}

func (uc *UpsertSubscriptionUseCase) update(ctx context.Context, sub *subscription.Subscription, cmd UpsertSubscriptionCommand, status vo.Status) error {
	if err := sub.ApplyProviderUpdate(status, cmd.PlanID, cmd.CurrentPeriodEnd); err != nil {
		return errors.NewValidationError("invalid subscription state", err.Error())
	}

	changed := len(sub.Events()) > 0
	if !changed {
		uc.logger.Debugw("subscription state unchanged",
			"provider_subscription_id", cmd.ProviderSubscriptionID)
		return nil
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.afterChange(ctx, sub.UserID(), status)

	uc.logger.Infow("subscription updated",
		"user_id", sub.UserID(),
		"provider_subscription_id", cmd.ProviderSubscriptionID,
		"status", status.String(),
	)
	return nil
}

func (uc *UpsertSubscriptionUseCase) afterChange(ctx context.Context, userID uint, status vo.Status) {
	if uc.entitlements != nil {
		if err := uc.entitlements.Invalidate(ctx, userID); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", userID, "error", err)
		}
	}

	if uc.notifier != nil {
		content := fmt.Sprintf("Your subscription is now **%s**.", status.String())
		if err := uc.notifier.NotifyUser(ctx, userID, notification.TypeSubscriptionUpdated, "Subscription updated", content); err != nil {
			uc.logger.Warnw("failed to emit subscription notification", "user_id", userID, "error", err)
		}
	}
}
