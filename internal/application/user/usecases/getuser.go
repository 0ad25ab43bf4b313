package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/subscription"
	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

type GetUserResult struct {
	User         *user.User
	Subscription *subscription.Subscription
}

// GetUserUseCase loads one account with its subscription record for the
// admin inspection view. A user without a record comes back with a nil
// subscription, which readers treat as status none.
type GetUserUseCase struct {
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetUserUseCase(
	userRepo user.Repository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*GetUserResult, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	sub, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warnw("failed to load subscription for user", "user_id", userID, "error", err)
	}

	return &GetUserResult{User: u, Subscription: sub}, nil
}
