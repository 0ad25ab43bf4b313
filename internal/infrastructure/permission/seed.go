package permission

import (
	"fmt"

	"aula/internal/domain/user"
)

type policy struct {
	role     user.Role
	resource string
	action   string
}

// Admin API endpoints are guarded by these policies. Route-level access for
// students and academy members is decided by the access guard, not casbin.
var defaultPolicies = []policy{
	{user.RoleAdmin, "users", "read"},
	{user.RoleAdmin, "users", "write"},
	{user.RoleAdmin, "subscriptions", "read"},
	{user.RoleAdmin, "subscriptions", "write"},
	{user.RoleAdmin, "notifications", "read"},
	{user.RoleAdmin, "notifications", "write"},
}

// SeedDefaultPolicies installs the role-to-resource policies. AddPolicy is
// idempotent for existing rules, so this is safe to run at every startup.
func (e *Enforcer) SeedDefaultPolicies() error {
	for _, p := range defaultPolicies {
		if err := e.AddPolicy(p.role.String(), p.resource, p.action); err != nil {
			return fmt.Errorf("failed to seed policy %s/%s/%s: %w", p.role, p.resource, p.action, err)
		}
	}
	return nil
}
