package access

import (
	"aula/internal/domain/user"
)

// State is the guard evaluation state. Every navigation re-enters from
// StateChecking; the terminal states are StateAllowed and StateDenied.
type State string

const (
	StateChecking State = "checking"
	StateAllowed  State = "allowed"
	StateDenied   State = "denied"
)

// Decision is the outcome of one route evaluation. RedirectTo is set only on
// deny; while checking, callers must hold rendering and perform no redirect.
type Decision struct {
	State      State  `json:"state"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// Guard evaluates route access against the static route table.
type Guard struct {
	table *RouteTable
}

// NewGuard creates a guard over the given table. The table's Validate is the
// caller's startup responsibility.
func NewGuard(table *RouteTable) *Guard {
	return &Guard{table: table}
}

// CanAccessRoute reports whether the permission set may enter path. Paths
// matching no configured prefix are unprotected and always allowed.
func (g *Guard) CanAccessRoute(path string, perms PermissionSet) bool {
	rule, protected := g.table.Match(path)
	if !protected {
		return true
	}
	return perms.Has(rule.Required)
}

// DefaultRedirectFor returns the canonical landing route for a role.
func (g *Guard) DefaultRedirectFor(role user.Role) string {
	return g.table.DefaultRedirectFor(role)
}

// Evaluate runs one guard cycle. resolved reports whether role and
// permissions have finished resolving; until then the decision stays
// StateChecking with no redirect, since redirecting off unresolved
// permissions is exactly the bug this state exists to prevent.
func (g *Guard) Evaluate(path string, role user.Role, perms PermissionSet, resolved bool) Decision {
	if !resolved {
		return Decision{State: StateChecking}
	}
	if g.CanAccessRoute(path, perms) {
		return Decision{State: StateAllowed}
	}
	return Decision{
		State:      StateDenied,
		RedirectTo: g.table.DefaultRedirectFor(role),
	}
}
