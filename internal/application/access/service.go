package access

import (
	"context"

	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

// Evaluation is the full outcome of one access evaluation: the resolved role,
// the derived capability set and the guard decision for the requested path.
type Evaluation struct {
	Role        user.Role     `json:"role"`
	Entitled    bool          `json:"entitled"`
	Permissions PermissionSet `json:"permissions"`
	Decision    Decision      `json:"decision"`
}

// Service wires the resolution pipeline: role, entitlement, derivation,
// guard. One instance serves all users; per-request state lives in the
// arguments.
type Service struct {
	roles        *RoleStore
	entitlements *SubscriptionResolver
	guard        *Guard
	logger       logger.Interface
}

// NewService creates the access service.
func NewService(
	roles *RoleStore,
	entitlements *SubscriptionResolver,
	guard *Guard,
	logger logger.Interface,
) *Service {
	return &Service{
		roles:        roles,
		entitlements: entitlements,
		guard:        guard,
		logger:       logger,
	}
}

// Guard exposes the underlying guard for middleware use.
func (s *Service) Guard() *Guard {
	return s.guard
}

// EvaluateRoute resolves the requester and runs the guard for path. It never
// returns an error; every failure inside the pipeline has already fallen
// back to its most restrictive value.
func (s *Service) EvaluateRoute(ctx context.Context, userID uint, claims TokenClaims, path string) Evaluation {
	res := s.roles.ResolveRole(ctx, userID, claims)
	entitled := s.entitlements.HasActiveEntitlement(ctx, userID, res)
	perms := Derive(res.Role, entitled, res.AdminOverride)
	decision := s.guard.Evaluate(path, res.Role, perms, true)

	if decision.State == StateDenied {
		s.logger.Infow("route denied",
			"user_id", userID,
			"path", path,
			"role", res.Role.String(),
			"redirect_to", decision.RedirectTo,
		)
	}

	return Evaluation{
		Role:        res.Role,
		Entitled:    entitled,
		Permissions: perms,
		Decision:    decision,
	}
}
