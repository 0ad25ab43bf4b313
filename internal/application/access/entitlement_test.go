package access

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/subscription"
	vo "aula/internal/domain/subscription/valueobjects"
	"aula/internal/domain/user"
	"aula/internal/shared/errors"
)

func reconstructedSubscription(t *testing.T, userID uint, status vo.Status, periodEnd time.Time) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	s, err := subscription.ReconstructSubscription(
		1, userID, status, "plan_premium", "cus_abc", "sub_abc",
		periodEnd, nil, nil, 1, now, now,
	)
	require.NoError(t, err)
	return s
}

func TestHasActiveEntitlementStatuses(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		status    vo.Status
		periodEnd time.Time
		expected  bool
	}{
		{name: "active future period", status: vo.StatusActive, periodEnd: now.Add(24 * time.Hour), expected: true},
		{name: "trialing future period", status: vo.StatusTrialing, periodEnd: now.Add(24 * time.Hour), expected: true},
		{name: "active expired period", status: vo.StatusActive, periodEnd: now.Add(-time.Hour), expected: false},
		{name: "cancelled", status: vo.StatusCancelled, periodEnd: now.Add(24 * time.Hour), expected: false},
		{name: "past_due", status: vo.StatusPastDue, periodEnd: now.Add(24 * time.Hour), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSubscriptionRepository{
				GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
					return reconstructedSubscription(t, userID, tt.status, tt.periodEnd), nil
				},
			}
			resolver := NewSubscriptionResolver(repo, nil, newNopLogger())

			entitled := resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleStudent})
			assert.Equal(t, tt.expected, entitled)
		})
	}
}

func TestHasActiveEntitlementAdminShortCircuit(t *testing.T) {
	repoCalled := false
	repo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			repoCalled = true
			return nil, errors.NewNotFoundError("no subscription")
		},
	}
	resolver := NewSubscriptionResolver(repo, nil, newNopLogger())

	assert.True(t, resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleAdmin}))
	assert.True(t, resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleStudent, AdminOverride: true}))
	assert.False(t, repoCalled, "admin entitlement must not consult the repository")
}

func TestHasActiveEntitlementFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		repo *mockSubscriptionRepository
	}{
		{
			name: "missing record",
			repo: &mockSubscriptionRepository{
				GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
					return nil, errors.NewNotFoundError("no subscription")
				},
			},
		},
		{
			name: "query failure",
			repo: &mockSubscriptionRepository{
				GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
					return nil, fmt.Errorf("connection refused")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewSubscriptionResolver(tt.repo, nil, newNopLogger())
			assert.False(t, resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleStudent}))
		})
	}
}

func TestHasActiveEntitlementCacheHitSkipsRepository(t *testing.T) {
	repoCalled := false
	repo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			repoCalled = true
			return nil, errors.NewNotFoundError("no subscription")
		},
	}
	cache := &mockEntitlementCache{
		GetFunc: func(ctx context.Context, userID uint) (bool, bool, error) {
			return true, true, nil
		},
	}
	resolver := NewSubscriptionResolver(repo, cache, newNopLogger())

	assert.True(t, resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleStudent}))
	assert.False(t, repoCalled)
}

func TestHasActiveEntitlementCacheMissFillsCache(t *testing.T) {
	repo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return reconstructedSubscription(t, userID, vo.StatusActive, time.Now().Add(24*time.Hour)), nil
		},
	}
	var cached *bool
	cache := &mockEntitlementCache{
		SetFunc: func(ctx context.Context, userID uint, entitled bool) error {
			cached = &entitled
			return nil
		},
	}
	resolver := NewSubscriptionResolver(repo, cache, newNopLogger())

	assert.True(t, resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleStudent}))
	require.NotNil(t, cached)
	assert.True(t, *cached)
}

func TestHasActiveEntitlementCacheErrorFallsThrough(t *testing.T) {
	repo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return reconstructedSubscription(t, userID, vo.StatusTrialing, time.Now().Add(24*time.Hour)), nil
		},
	}
	cache := &mockEntitlementCache{
		GetFunc: func(ctx context.Context, userID uint) (bool, bool, error) {
			return false, false, fmt.Errorf("redis down")
		},
	}
	resolver := NewSubscriptionResolver(repo, cache, newNopLogger())

	assert.True(t, resolver.HasActiveEntitlement(context.Background(), 7, Resolution{Role: user.RoleStudent}))
}
