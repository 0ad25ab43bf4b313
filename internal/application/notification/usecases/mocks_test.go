package usecases

import (
	"context"

	"aula/internal/domain/notification"
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

type mockNotificationRepository struct {
	CreateFunc      func(ctx context.Context, n *notification.Notification) error
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc     func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserFunc  func(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error)
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, uuid string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByProviderCustomerID(ctx context.Context, customerID string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type sentEmail struct {
	To       string
	Subject  string
	HTMLBody string
}

type mockEmailSender struct {
	SendFunc func(to, subject, htmlBody string) error
	Sent     chan sentEmail
}

func newMockEmailSender() *mockEmailSender {
	return &mockEmailSender{Sent: make(chan sentEmail, 8)}
}

func (m *mockEmailSender) Send(to, subject, htmlBody string) error {
	if m.Sent != nil {
		m.Sent <- sentEmail{To: to, Subject: subject, HTMLBody: htmlBody}
	}
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, htmlBody)
	}
	return nil
}
