// Package notification wires notification use cases behind a single service
// facade used by the HTTP layer and by billing event processing.
package notification

import (
	"context"

	"aula/internal/application/notification/usecases"
	"aula/internal/domain/notification"
	"aula/internal/domain/user"
	"aula/internal/shared/logger"
	"aula/internal/shared/markdown"
)

type Service struct {
	logger logger.Interface

	notifyUser     *usecases.NotifyUserUseCase
	list           *usecases.ListNotificationsUseCase
	markRead       *usecases.MarkNotificationReadUseCase
	getUnreadCount *usecases.GetUnreadCountUseCase
	resend         *usecases.ResendNotificationUseCase
}

func NewService(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	emailSender usecases.EmailSender,
	markdownService markdown.Service,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		notifyUser:     usecases.NewNotifyUserUseCase(notificationRepo, userRepo, emailSender, markdownService, logger),
		list:           usecases.NewListNotificationsUseCase(notificationRepo, logger),
		markRead:       usecases.NewMarkNotificationReadUseCase(notificationRepo, logger),
		getUnreadCount: usecases.NewGetUnreadCountUseCase(notificationRepo, logger),
		resend:         usecases.NewResendNotificationUseCase(notificationRepo, userRepo, emailSender, markdownService, logger),
	}
}

// NotifyUser records an in-app notification and delivers it by email in the
// background.
func (s *Service) NotifyUser(ctx context.Context, userID uint, notifType notification.Type, title, content string) error {
	return s.notifyUser.Execute(ctx, userID, notifType, title, content)
}

func (s *Service) ListNotifications(ctx context.Context, cmd usecases.ListNotificationsCommand) (*usecases.ListNotificationsResult, error) {
	return s.list.Execute(ctx, cmd)
}

func (s *Service) MarkNotificationRead(ctx context.Context, id, userID uint) error {
	return s.markRead.Execute(ctx, id, userID)
}

func (s *Service) GetUnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.getUnreadCount.Execute(ctx, userID)
}

func (s *Service) ResendNotification(ctx context.Context, id uint) error {
	return s.resend.Execute(ctx, id)
}
