package access

import (
	"context"
	"time"

	"aula/internal/domain/subscription"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// EntitlementCache is the cached entitlement flag the reconciler invalidates
// when a provider event lands. Get reports (entitled, found, err); a miss is
// not an error.
type EntitlementCache interface {
	Get(ctx context.Context, userID uint) (bool, bool, error)
	Set(ctx context.Context, userID uint, entitled bool) error
	Invalidate(ctx context.Context, userID uint) error
}

// SubscriptionResolver decides whether a user's subscription entitles them to
// paid content. Admins short-circuit to true; everyone else needs an active
// or trialing record whose paid period has not ended. Failures resolve to
// false, never to an error.
type SubscriptionResolver struct {
	subscriptions subscription.Repository
	cache         EntitlementCache
	now           func() time.Time
	logger        logger.Interface
}

// NewSubscriptionResolver creates a subscription resolver. cache may be nil,
// in which case every resolution hits the repository.
func NewSubscriptionResolver(
	subscriptions subscription.Repository,
	cache EntitlementCache,
	logger logger.Interface,
) *SubscriptionResolver {
	return &SubscriptionResolver{
		subscriptions: subscriptions,
		cache:         cache,
		now:           time.Now,
		logger:        logger,
	}
}

// HasActiveEntitlement reports whether userID may access paid content under
// the given resolution.
func (r *SubscriptionResolver) HasActiveEntitlement(ctx context.Context, userID uint, res Resolution) bool {
	if res.AdminOverride || res.Role.IsAdmin() {
		return true
	}
	if userID == 0 {
		return false
	}

	if r.cache != nil {
		entitled, found, err := r.cache.Get(ctx, userID)
		if err != nil {
			r.logger.Warnw("entitlement cache read failed, falling through to repository", "error", err, "user_id", userID)
		} else if found {
			return entitled
		}
	}

	entitled := r.resolveFromRecord(ctx, userID)

	if r.cache != nil {
		if err := r.cache.Set(ctx, userID, entitled); err != nil {
			r.logger.Warnw("entitlement cache write failed", "error", err, "user_id", userID)
		}
	}

	return entitled
}

func (r *SubscriptionResolver) resolveFromRecord(ctx context.Context, userID uint) bool {
	sub, err := r.subscriptions.GetByUserID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false
		}
		r.logger.Warnw("subscription lookup failed, resolving to not entitled", "error", err, "user_id", userID)
		return false
	}
	if sub == nil {
		return false
	}
	return sub.IsEntitling(r.now())
}
