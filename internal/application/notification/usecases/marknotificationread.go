package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// MarkNotificationReadUseCase marks a notification as read for its owner.
// Marking an already read notification is a no-op.
type MarkNotificationReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, id, userID uint) error {
	notif, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("notification not found")
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}

	if notif.UserID() != userID {
		uc.logger.Warnw("blocked access to another user's notification",
			"notification_id", id,
			"user_id", userID,
			"owner_id", notif.UserID(),
		)
		return errors.NewForbiddenError("you don't have permission to access this notification")
	}

	if notif.ReadStatus() == notification.ReadStatusRead {
		return nil
	}

	notif.MarkRead()

	if err := uc.repo.Update(ctx, notif); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}
