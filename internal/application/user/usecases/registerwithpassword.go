package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aula/internal/domain/user"
	vo "aula/internal/domain/user/valueobjects"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterWithPasswordResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RegisterWithPasswordUseCase creates a student account and issues the first
// token pair.
type RegisterWithPasswordUseCase struct {
	userRepo   user.Repository
	hasher     PasswordHasher
	jwtService JWTService
	roleSyncer RoleSyncer
	logger     logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	roleSyncer RoleSyncer,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		roleSyncer: roleSyncer,
		logger:     logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	newUser, err := user.NewUser(uuid.New().String(), email, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError("invalid registration data", err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if uc.roleSyncer != nil {
		if err := uc.roleSyncer.SyncUserRole(ctx, newUser.UUID(), newUser.Role()); err != nil {
			uc.logger.Warnw("failed to sync role grant", "user_uuid", newUser.UUID(), "error", err)
		}
	}

	tokens, err := uc.jwtService.Generate(newUser.UUID(), newUser.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String())

	return &RegisterWithPasswordResult{
		User:         newUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
