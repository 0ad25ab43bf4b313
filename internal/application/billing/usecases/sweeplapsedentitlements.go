package usecases

import (
	"context"
	"time"

	"aula/internal/domain/subscription"
	"aula/internal/shared/logger"
)

const sweepBatchSize = 200

// SweepLapsedEntitlementsUseCase drops the cached entitlement flag of users
// whose subscription period has ended but whose status has not yet been
// updated by a provider event. Without it a lapsed user keeps paid access
// until the cache TTL expires.
type SweepLapsedEntitlementsUseCase struct {
	subscriptionRepo subscription.Repository
	entitlements     EntitlementInvalidator
	now              func() time.Time
	logger           logger.Interface
}

// NewSweepLapsedEntitlementsUseCase creates a new sweep use case.
func NewSweepLapsedEntitlementsUseCase(
	subscriptionRepo subscription.Repository,
	entitlements EntitlementInvalidator,
	logger logger.Interface,
) *SweepLapsedEntitlementsUseCase {
	return &SweepLapsedEntitlementsUseCase{
		subscriptionRepo: subscriptionRepo,
		entitlements:     entitlements,
		now:              time.Now,
		logger:           logger,
	}
}

// Execute runs one sweep batch and returns the number of flags dropped.
func (uc *SweepLapsedEntitlementsUseCase) Execute(ctx context.Context) (int, error) {
	lapsed, err := uc.subscriptionRepo.ListLapsed(ctx, uc.now().UTC(), sweepBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to list lapsed subscriptions", "error", err)
		return 0, err
	}

	invalidated := 0
	for _, sub := range lapsed {
		if err := uc.entitlements.Invalidate(ctx, sub.UserID()); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement for lapsed subscription",
				"user_id", sub.UserID(),
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}
		invalidated++
	}

	if invalidated > 0 {
		uc.logger.Infow("entitlement sweep completed", "lapsed", len(lapsed), "invalidated", invalidated)
	}
	return invalidated, nil
}
