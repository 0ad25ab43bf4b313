// Package permission exposes casbin-backed permission checks and keeps the
// enforcer's role groupings in sync with stored user roles.
package permission

import (
	"context"
	"fmt"

	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

// PolicyEnforcer is the subset of the casbin wrapper the service needs.
type PolicyEnforcer interface {
	Enforce(subject, resource, action string) (bool, error)
	SetRoleForUser(userUUID, role string) error
	GetRolesForUser(userUUID string) ([]string, error)
}

type Service struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewService(enforcer PolicyEnforcer, logger logger.Interface) *Service {
	return &Service{
		enforcer: enforcer,
		logger:   logger,
	}
}

// CheckPermission reports whether the user may perform action on resource,
// either directly or through a role grouping.
func (s *Service) CheckPermission(ctx context.Context, userUUID, resource, action string) (bool, error) {
	allowed, err := s.enforcer.Enforce(userUUID, resource, action)
	if err != nil {
		return false, fmt.Errorf("failed to check permission: %w", err)
	}
	return allowed, nil
}

// SyncUserRole replaces the user's enforcer grouping after a role change so
// casbin and the user store agree on the user's role.
func (s *Service) SyncUserRole(ctx context.Context, userUUID string, role user.Role) error {
	if err := s.enforcer.SetRoleForUser(userUUID, role.String()); err != nil {
		return fmt.Errorf("failed to sync role for user %s: %w", userUUID, err)
	}

	s.logger.Debugw("synced user role grouping", "user_uuid", userUUID, "role", role.String())
	return nil
}

// GetUserRoles returns the role slugs currently grouped to the user.
func (s *Service) GetUserRoles(ctx context.Context, userUUID string) ([]string, error) {
	roles, err := s.enforcer.GetRolesForUser(userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user %s: %w", userUUID, err)
	}
	return roles, nil
}
