package usecases

import (
	"context"

	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenUseCase exchanges a refresh token for a fresh pair. The new
// access token re-reads the stored role, so a grant made since the last
// login takes effect here.
type RefreshTokenUseCase struct {
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshTokenUseCase(jwtService JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	tokens, err := uc.jwtService.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return tokens, nil
}
