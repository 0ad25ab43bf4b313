package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// LoginWithPasswordUseCase verifies credentials and issues a token pair
// carrying the user's current role claim.
type LoginWithPasswordUseCase struct {
	userRepo   user.Repository
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Generic error either way so the response does not reveal whether the
	// email exists.
	if existing == nil || existing.PasswordHash() == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !existing.IsActive() {
		return nil, errors.NewForbiddenError("account is suspended")
	}

	if err := uc.hasher.Verify(*existing.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(existing.UUID(), existing.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &LoginWithPasswordResult{
		User:         existing,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
