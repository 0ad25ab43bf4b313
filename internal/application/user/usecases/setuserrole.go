package usecases

import (
	"context"
	"fmt"

	"aula/internal/domain/shared/events"
	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

type SetUserRoleCommand struct {
	UserID uint
	Role   string
}

// SetUserRoleUseCase changes a user's stored role, mirrors the grant into
// the policy store and publishes the role-changed event so live watchers
// re-derive their permissions.
type SetUserRoleUseCase struct {
	userRepo   user.Repository
	roleSyncer RoleSyncer
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewSetUserRoleUseCase(
	userRepo user.Repository,
	roleSyncer RoleSyncer,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{
		userRepo:   userRepo,
		roleSyncer: roleSyncer,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *SetUserRoleUseCase) Execute(ctx context.Context, cmd SetUserRoleCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID cannot be zero")
	}

	role := user.Role(cmd.Role)
	if !role.IsValid() || role == user.RoleGuest {
		return errors.NewValidationError(fmt.Sprintf("role must be one of student, academy, admin, got %q", cmd.Role))
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("user not found")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := existing.ChangeRole(role); err != nil {
		return errors.NewValidationError("invalid role change", err.Error())
	}

	recorded := existing.Events()
	if len(recorded) == 0 {
		// Same role; nothing to persist or announce.
		return nil
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if uc.roleSyncer != nil {
		if err := uc.roleSyncer.SyncUserRole(ctx, existing.UUID(), role); err != nil {
			uc.logger.Errorw("failed to sync role grant", "user_uuid", existing.UUID(), "error", err)
		}
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.PublishAll(recorded); err != nil {
			uc.logger.Warnw("failed to publish role change events", "user_id", existing.ID(), "error", err)
		}
	}

	uc.logger.Infow("user role changed", "user_id", existing.ID(), "role", role.String())
	return nil
}
