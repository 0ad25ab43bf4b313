package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/domain/user"
	"aula/internal/shared/goroutine"
	"aula/internal/shared/logger"
	"aula/internal/shared/markdown"
)

// NotifyUserUseCase records an in-app notification and delivers it by email
// in the background. Email delivery is best effort; the notification record
// is the source of truth.
type NotifyUserUseCase struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	emailSender      EmailSender
	markdownService  markdown.Service
	logger           logger.Interface
}

func NewNotifyUserUseCase(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	emailSender EmailSender,
	markdownService markdown.Service,
	logger logger.Interface,
) *NotifyUserUseCase {
	return &NotifyUserUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		markdownService:  markdownService,
		logger:           logger,
	}
}

func (uc *NotifyUserUseCase) Execute(ctx context.Context, userID uint, notifType notification.Type, title, content string) error {
	notif, err := notification.NewNotification(userID, notifType, title, content)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	if err := uc.notificationRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	uc.logger.Infow("notification created",
		"notification_id", notif.ID(),
		"user_id", userID,
		"type", notifType.String(),
	)

	if uc.emailSender != nil {
		goroutine.SafeGo(uc.logger, "notification-email", func() {
			uc.deliverEmail(userID, title, content)
		})
	}

	return nil
}

func (uc *NotifyUserUseCase) deliverEmail(userID uint, title, content string) {
	ctx := context.Background()

	recipient, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("skipping notification email, user lookup failed", "user_id", userID, "error", err)
		return
	}

	htmlBody, err := uc.markdownService.ToHTMLSanitized(content)
	if err != nil {
		uc.logger.Warnw("skipping notification email, render failed", "user_id", userID, "error", err)
		return
	}

	if err := uc.emailSender.Send(recipient.Email().String(), title, htmlBody); err != nil {
		uc.logger.Warnw("failed to send notification email", "user_id", userID, "error", err)
		return
	}

	uc.logger.Debugw("notification email sent", "user_id", userID)
}
