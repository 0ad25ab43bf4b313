package usecases

import (
	"context"
	"time"

	"aula/internal/domain/notification"
	"aula/internal/domain/subscription"
	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)           {}
func (l *nopLogger) Info(msg string, args ...any)            {}
func (l *nopLogger) Warn(msg string, args ...any)            {}
func (l *nopLogger) Error(msg string, args ...any)           {}
func (l *nopLogger) With(args ...any) logger.Interface       { return l }
func (l *nopLogger) Named(name string) logger.Interface      { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...any) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...any)  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...any) {}

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
	ListLapsedFunc                  func(ctx context.Context, asOf time.Time, limit int) ([]*subscription.Subscription, error)
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
	if m.ListLapsedFunc != nil {
		return m.ListLapsedFunc(ctx, asOf, limit)
	}
	return nil, nil
}

type mockPaymentRecordRepository struct {
	CreateFunc                 func(ctx context.Context, p *subscription.PaymentRecord) error
	GetByProviderInvoiceIDFunc func(ctx context.Context, invoiceID string) (*subscription.PaymentRecord, error)
	ListByUserFunc             func(ctx context.Context, userID uint, limit int) ([]*subscription.PaymentRecord, error)
}

func (m *mockPaymentRecordRepository) Create(ctx context.Context, p *subscription.PaymentRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRecordRepository) GetByProviderInvoiceID(ctx context.Context, invoiceID string) (*subscription.PaymentRecord, error) {
	if m.GetByProviderInvoiceIDFunc != nil {
		return m.GetByProviderInvoiceIDFunc(ctx, invoiceID)
	}
	return nil, nil
}

func (m *mockPaymentRecordRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*subscription.PaymentRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

type mockWebhookEventRepository struct {
	RecordFunc       func(ctx context.Context, e *subscription.WebhookEvent) (bool, error)
	WasProcessedFunc func(ctx context.Context, eventID string) (bool, error)
}

func (m *mockWebhookEventRepository) Record(ctx context.Context, e *subscription.WebhookEvent) (bool, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, e)
	}
	return true, nil
}

func (m *mockWebhookEventRepository) WasProcessed(ctx context.Context, eventID string) (bool, error) {
	if m.WasProcessedFunc != nil {
		return m.WasProcessedFunc(ctx, eventID)
	}
	return false, nil
}

type notifiedCall struct {
	UserID    uint
	NotifType notification.Type
	Title     string
	Content   string
}

type mockNotifier struct {
	NotifyUserFunc func(ctx context.Context, userID uint, notifType notification.Type, title, content string) error
	Calls          []notifiedCall
}

func (m *mockNotifier) NotifyUser(ctx context.Context, userID uint, notifType notification.Type, title, content string) error {
	m.Calls = append(m.Calls, notifiedCall{UserID: userID, NotifType: notifType, Title: title, Content: content})
	if m.NotifyUserFunc != nil {
		return m.NotifyUserFunc(ctx, userID, notifType, title, content)
	}
	return nil
}

type mockEntitlementInvalidator struct {
	InvalidateFunc func(ctx context.Context, userID uint) error
	Invalidated    []uint
}

func (m *mockEntitlementInvalidator) Invalidate(ctx context.Context, userID uint) error {
	m.Invalidated = append(m.Invalidated, userID)
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}

type mockEventDedupe struct {
	TryClaimFunc func(ctx context.Context, eventID string) (bool, error)
	ReleaseFunc  func(ctx context.Context, eventID string) error
	Released     []string
}

func (m *mockEventDedupe) TryClaim(ctx context.Context, eventID string) (bool, error) {
	if m.TryClaimFunc != nil {
		return m.TryClaimFunc(ctx, eventID)
	}
	return true, nil
}

func (m *mockEventDedupe) Release(ctx context.Context, eventID string) error {
	m.Released = append(m.Released, eventID)
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, eventID)
	}
	return nil
}
