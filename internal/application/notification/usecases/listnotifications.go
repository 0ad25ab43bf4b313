package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/shared/constants"
	"aula/internal/shared/logger"
)

type ListNotificationsCommand struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListNotificationsResult struct {
	Notifications []*notification.Notification
	Total         int64
	Page          int
	PageSize      int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	notifications, total, err := uc.repo.ListByUser(ctx, cmd.UserID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &ListNotificationsResult{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}
