package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/subscription"
	svo "aula/internal/domain/subscription/valueobjects"
)

func lapsedSubscription(t *testing.T, id, userID uint) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	s, err := subscription.ReconstructSubscription(
		id, userID, svo.StatusActive, "plan_premium", fmt.Sprintf("cus_%d", userID), fmt.Sprintf("sub_%d", userID),
		now.Add(-time.Hour), nil, nil, 1, now.Add(-720*time.Hour), now,
	)
	require.NoError(t, err)
	return s
}

func TestSweepInvalidatesLapsedEntitlements(t *testing.T) {
	subs := &mockSubscriptionRepository{
		ListLapsedFunc: func(ctx context.Context, asOf time.Time, limit int) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{
				lapsedSubscription(t, 1, 10),
				lapsedSubscription(t, 2, 11),
			}, nil
		},
	}
	cache := &mockEntitlementInvalidator{}

	uc := NewSweepLapsedEntitlementsUseCase(subs, cache, newNopLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []uint{10, 11}, cache.Invalidated)
}

func TestSweepContinuesPastInvalidationFailure(t *testing.T) {
	subs := &mockSubscriptionRepository{
		ListLapsedFunc: func(ctx context.Context, asOf time.Time, limit int) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{
				lapsedSubscription(t, 1, 10),
				lapsedSubscription(t, 2, 11),
			}, nil
		},
	}
	cache := &mockEntitlementInvalidator{
		InvalidateFunc: func(ctx context.Context, userID uint) error {
			if userID == 10 {
				return fmt.Errorf("redis unavailable")
			}
			return nil
		},
	}

	uc := NewSweepLapsedEntitlementsUseCase(subs, cache, newNopLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSweepPropagatesListFailure(t *testing.T) {
	subs := &mockSubscriptionRepository{
		ListLapsedFunc: func(ctx context.Context, asOf time.Time, limit int) ([]*subscription.Subscription, error) {
			return nil, fmt.Errorf("database unavailable")
		},
	}

	uc := NewSweepLapsedEntitlementsUseCase(subs, &mockEntitlementInvalidator{}, newNopLogger())

	count, err := uc.Execute(context.Background())
	assert.Error(t, err)
	assert.Zero(t, count)
}
