package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/notification"
	"aula/internal/shared/constants"
)

func TestListNotificationsClampsPaging(t *testing.T) {
	var gotPage, gotPageSize int
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
			gotPage, gotPageSize = page, pageSize
			return []*notification.Notification{storedNotification(t, 1, userID, notification.ReadStatusUnread)}, 1, nil
		},
	}
	uc := NewListNotificationsUseCase(repo, newNopLogger())

	result, err := uc.Execute(context.Background(), ListNotificationsCommand{UserID: 42, Page: 0, PageSize: 10_000})

	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, constants.MaxPageSize, gotPageSize)
	assert.Len(t, result.Notifications, 1)
	assert.Equal(t, int64(1), result.Total)
}

func TestListNotificationsDefaultPageSize(t *testing.T) {
	var gotPageSize int
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
			gotPageSize = pageSize
			return nil, 0, nil
		},
	}
	uc := NewListNotificationsUseCase(repo, newNopLogger())

	_, err := uc.Execute(context.Background(), ListNotificationsCommand{UserID: 42, Page: 1})

	require.NoError(t, err)
	assert.Equal(t, constants.DefaultPageSize, gotPageSize)
}
