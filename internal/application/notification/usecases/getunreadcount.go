package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(repo notification.Repository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{repo: repo, logger: logger}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	count, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
