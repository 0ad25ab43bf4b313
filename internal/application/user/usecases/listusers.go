package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/user"
	"aula/internal/shared/constants"
	"aula/internal/shared/logger"
)

type ListUsersCommand struct {
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*user.User
	Total    int64
	Page     int
	PageSize int
}

// ListUsersUseCase pages through accounts for the admin panel.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > constants.MaxPageSize {
		cmd.PageSize = constants.DefaultPageSize
	}

	filter := user.ListFilter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	if cmd.Role != "" {
		role := user.Role(cmd.Role)
		if !role.IsValid() {
			return &ListUsersResult{Page: cmd.Page, PageSize: cmd.PageSize}, nil
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersResult{
		Users:    users,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
