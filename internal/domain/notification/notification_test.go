package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(7, TypePaymentFailed, "Payment failed", "We could not charge your card.")
	require.NoError(t, err)

	assert.Equal(t, uint(7), n.UserID())
	assert.Equal(t, TypePaymentFailed, n.Type())
	assert.Equal(t, ReadStatusUnread, n.ReadStatus())
}

func TestNewNotificationValidation(t *testing.T) {
	tests := []struct {
		name      string
		userID    uint
		notifType Type
		title     string
	}{
		{name: "missing user", userID: 0, notifType: TypePaymentFailed, title: "t"},
		{name: "invalid type", userID: 1, notifType: Type("bogus"), title: "t"},
		{name: "empty title", userID: 1, notifType: TypePaymentFailed, title: ""},
		{name: "title too long", userID: 1, notifType: TypePaymentFailed, title: strings.Repeat("a", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.userID, tt.notifType, tt.title, "body")
			assert.Error(t, err)
		})
	}
}

func TestMarkRead(t *testing.T) {
	n, err := NewNotification(7, TypeSubscriptionUpdated, "Subscription updated", "body")
	require.NoError(t, err)

	n.MarkRead()
	assert.Equal(t, ReadStatusRead, n.ReadStatus())

	updatedAt := n.UpdatedAt()
	n.MarkRead()
	assert.Equal(t, updatedAt, n.UpdatedAt(), "marking read twice must be a no-op")
}

func TestSetID(t *testing.T) {
	n, err := NewNotification(7, TypePaymentSucceeded, "Payment received", "body")
	require.NoError(t, err)

	require.NoError(t, n.SetID(10))
	assert.Error(t, n.SetID(11))
	assert.Equal(t, uint(10), n.ID())
}
