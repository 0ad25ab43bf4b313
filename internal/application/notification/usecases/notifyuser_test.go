package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/notification"
	"aula/internal/domain/user"
	vo "aula/internal/domain/user/valueobjects"
	"aula/internal/shared/markdown"
)

func recipientUser(t *testing.T, id uint) *user.User {
	t.Helper()
	email, err := vo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	require.NoError(t, err)
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, fmt.Sprintf("uuid-%d", id), email, "Test User", user.RoleStudent, vo.StatusActive, nil, nil, now, now, 1)
	require.NoError(t, err)
	return u
}

func TestNotifyUserCreatesRecordAndSendsEmail(t *testing.T) {
	var created *notification.Notification
	notifRepo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			created = n
			return n.SetID(7)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return recipientUser(t, id), nil
		},
	}
	sender := newMockEmailSender()
	uc := NewNotifyUserUseCase(notifRepo, userRepo, sender, markdown.NewService(), newNopLogger())

	err := uc.Execute(context.Background(), 42, notification.TypePaymentSucceeded, "Payment received", "We received your payment of **10.00 EUR**.")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(42), created.UserID())
	assert.Equal(t, notification.ReadStatusUnread, created.ReadStatus())

	select {
	case mail := <-sender.Sent:
		assert.Equal(t, "user42@example.com", mail.To)
		assert.Equal(t, "Payment received", mail.Subject)
		assert.Contains(t, mail.HTMLBody, "<strong>10.00 EUR</strong>")
	case <-time.After(time.Second):
		t.Fatal("expected a notification email")
	}
}

func TestNotifyUserWithoutEmailSender(t *testing.T) {
	notifRepo := &mockNotificationRepository{}
	uc := NewNotifyUserUseCase(notifRepo, &mockUserRepository{}, nil, markdown.NewService(), newNopLogger())

	err := uc.Execute(context.Background(), 42, notification.TypeSubscriptionUpdated, "Subscription updated", "Your subscription is now **active**.")

	assert.NoError(t, err)
}

func TestNotifyUserRepositoryFailure(t *testing.T) {
	notifRepo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			return fmt.Errorf("connection refused")
		},
	}
	sender := newMockEmailSender()
	uc := NewNotifyUserUseCase(notifRepo, &mockUserRepository{}, sender, markdown.NewService(), newNopLogger())

	err := uc.Execute(context.Background(), 42, notification.TypePaymentFailed, "Payment failed", "Please update your payment method.")

	require.Error(t, err)
	select {
	case <-sender.Sent:
		t.Fatal("no email should be sent when the record was not saved")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifyUserInvalidType(t *testing.T) {
	uc := NewNotifyUserUseCase(&mockNotificationRepository{}, &mockUserRepository{}, nil, markdown.NewService(), newNopLogger())

	err := uc.Execute(context.Background(), 42, notification.Type("carrier_pigeon"), "Hello", "body")

	assert.Error(t, err)
}
