package access

import (
	"context"
	"time"

	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

// TokenClaims carries the role information extracted from a verified identity
// token. Values are untrusted strings; anything malformed falls through to
// the guest path instead of propagating.
type TokenClaims struct {
	Role  string
	Roles []string
}

// HasAdminClaim reports whether the claims name the admin role, either as the
// single role claim or inside the allowed-roles list.
func (c TokenClaims) HasAdminClaim() bool {
	if user.ParseRole(c.Role) == user.RoleAdmin {
		return true
	}
	for _, r := range c.Roles {
		if user.ParseRole(r) == user.RoleAdmin {
			return true
		}
	}
	return false
}

// Resolution is the outcome of one role lookup. AdminOverride records that the
// admin role came from the token fast path, so downstream derivation can OR it
// with the stored role.
type Resolution struct {
	Role          user.Role
	AdminOverride bool
}

// RoleStore resolves a user's canonical role. Precedence: admin token claim,
// then the stored user record, then guest. Lookups never return an error to
// the caller; every failure resolves to guest so access fails closed.
type RoleStore struct {
	users         user.Repository
	lookupTimeout time.Duration
	logger        logger.Interface
}

// NewRoleStore creates a role store. A zero timeout disables the bounded
// lookup deadline.
func NewRoleStore(users user.Repository, lookupTimeout time.Duration, logger logger.Interface) *RoleStore {
	return &RoleStore{
		users:         users,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// ResolveRole resolves the role for userID. The admin token claim short
// circuits without touching the database; otherwise the stored record wins
// and missing or failed lookups fall back to guest.
func (s *RoleStore) ResolveRole(ctx context.Context, userID uint, claims TokenClaims) Resolution {
	if claims.HasAdminClaim() {
		return Resolution{Role: user.RoleAdmin, AdminOverride: true}
	}

	if userID == 0 {
		return Resolution{Role: user.RoleGuest}
	}

	if s.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lookupTimeout)
		defer cancel()
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warnw("role lookup failed, resolving to guest", "error", err, "user_id", userID)
		return Resolution{Role: user.RoleGuest}
	}
	if u == nil {
		s.logger.Debugw("no user record, resolving to guest", "user_id", userID)
		return Resolution{Role: user.RoleGuest}
	}

	role := u.Role()
	if !role.IsValid() || role == user.RoleGuest {
		s.logger.Warnw("stored role is not elevated, resolving to guest", "user_id", userID, "stored_role", role.String())
		return Resolution{Role: user.RoleGuest}
	}

	return Resolution{Role: role}
}
