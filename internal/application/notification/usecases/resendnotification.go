package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
	"aula/internal/shared/markdown"
)

// ResendNotificationUseCase re-delivers an existing notification's email.
// Used from the admin panel when a delivery was reported missing.
type ResendNotificationUseCase struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	emailSender      EmailSender
	markdownService  markdown.Service
	logger           logger.Interface
}

func NewResendNotificationUseCase(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	emailSender EmailSender,
	markdownService markdown.Service,
	logger logger.Interface,
) *ResendNotificationUseCase {
	return &ResendNotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		markdownService:  markdownService,
		logger:           logger,
	}
}

func (uc *ResendNotificationUseCase) Execute(ctx context.Context, id uint) error {
	if uc.emailSender == nil {
		return errors.NewValidationError("email delivery is not configured")
	}

	notif, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("notification not found")
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}

	recipient, err := uc.userRepo.GetByID(ctx, notif.UserID())
	if err != nil {
		return fmt.Errorf("failed to load recipient: %w", err)
	}

	htmlBody, err := uc.markdownService.ToHTMLSanitized(notif.Content())
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	if err := uc.emailSender.Send(recipient.Email().String(), notif.Title(), htmlBody); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	uc.logger.Infow("notification email resent", "notification_id", id, "user_id", notif.UserID())
	return nil
}
