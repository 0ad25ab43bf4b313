package access

import (
	"context"
	"time"

	"aula/internal/domain/subscription"
	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)              {}
func (l *nopLogger) Info(msg string, args ...any)               {}
func (l *nopLogger) Warn(msg string, args ...any)               {}
func (l *nopLogger) Error(msg string, args ...any)              {}
func (l *nopLogger) With(args ...any) logger.Interface          { return l }
func (l *nopLogger) Named(name string) logger.Interface         { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...any)    {}
func (l *nopLogger) Infow(msg string, keysAndValues ...any)     {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...any)     {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...any)    {}

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*user.User, error)
	GetByUUIDFunc               func(ctx context.Context, uuid string) (*user.User, error)
	GetByEmailFunc              func(ctx context.Context, email string) (*user.User, error)
	GetByProviderCustomerIDFunc func(ctx context.Context, customerID string) (*user.User, error)
	ListFunc                    func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, uuid string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByProviderCustomerID(ctx context.Context, customerID string) (*user.User, error) {
	if m.GetByProviderCustomerIDFunc != nil {
		return m.GetByProviderCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockSubscriptionRepository struct {
	CreateFunc                      func(ctx context.Context, s *subscription.Subscription) error
	UpdateFunc                      func(ctx context.Context, s *subscription.Subscription) error
	GetByUserIDFunc                 func(ctx context.Context, userID uint) (*subscription.Subscription, error)
	GetByProviderSubscriptionIDFunc func(ctx context.Context, providerSubscriptionID string) (*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByProviderSubscriptionID(ctx context.Context, providerSubscriptionID string) (*subscription.Subscription, error) {
	if m.GetByProviderSubscriptionIDFunc != nil {
		return m.GetByProviderSubscriptionIDFunc(ctx, providerSubscriptionID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListLapsed(ctx context.Context, asOf time.Time, limit int) ([]*subscription.Subscription, error) {
	return nil, nil
}

type mockEntitlementCache struct {
	GetFunc        func(ctx context.Context, userID uint) (bool, bool, error)
	SetFunc        func(ctx context.Context, userID uint, entitled bool) error
	InvalidateFunc func(ctx context.Context, userID uint) error
}

func (m *mockEntitlementCache) Get(ctx context.Context, userID uint) (bool, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return false, false, nil
}

func (m *mockEntitlementCache) Set(ctx context.Context, userID uint, entitled bool) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, userID, entitled)
	}
	return nil
}

func (m *mockEntitlementCache) Invalidate(ctx context.Context, userID uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}
