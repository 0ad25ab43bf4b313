package access

import (
	"fmt"
	"sort"
	"strings"

	"aula/internal/domain/user"
)

// RouteRule binds a route prefix to the capability required to enter it.
type RouteRule struct {
	Prefix   string
	Required Capability
}

// RouteTable is the static route-access configuration: prefix rules plus the
// per-role default redirect targets. It is built once at startup and read-only
// afterwards.
type RouteTable struct {
	rules     []RouteRule
	redirects map[user.Role]string
}

// NewRouteTable builds a route table. Rules are kept sorted by descending
// prefix length so Match can return the first hit as the longest one.
func NewRouteTable(rules []RouteRule, redirects map[user.Role]string) (*RouteTable, error) {
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if r.Prefix == "" || !strings.HasPrefix(r.Prefix, "/") {
			return nil, fmt.Errorf("route prefix must start with /: %q", r.Prefix)
		}
		if _, dup := seen[r.Prefix]; dup {
			return nil, fmt.Errorf("duplicate route prefix: %q", r.Prefix)
		}
		seen[r.Prefix] = struct{}{}
	}

	for _, role := range []user.Role{user.RoleGuest, user.RoleStudent, user.RoleAcademy, user.RoleAdmin} {
		if redirects[role] == "" {
			return nil, fmt.Errorf("no default redirect configured for role %s", role)
		}
	}

	sorted := make([]RouteRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})

	return &RouteTable{rules: sorted, redirects: redirects}, nil
}

// DefaultRouteTable returns the platform route table.
func DefaultRouteTable() *RouteTable {
	table, err := NewRouteTable(
		[]RouteRule{
			{Prefix: "/admin", Required: CapabilityAdmin},
			{Prefix: "/academia", Required: CapabilityAcademy},
			{Prefix: "/alumno", Required: CapabilityStudentPanel},
			{Prefix: "/temario", Required: CapabilityTemario},
			{Prefix: "/tests", Required: CapabilityTests},
			{Prefix: "/flashcards", Required: CapabilityFlashcards},
		},
		map[user.Role]string{
			user.RoleAdmin:   "/admin",
			user.RoleAcademy: "/academia",
			user.RoleStudent: "/alumno",
			user.RoleGuest:   "/login",
		},
	)
	if err != nil {
		panic(fmt.Sprintf("default route table: %v", err))
	}
	return table
}

// Match returns the longest-prefix rule covering path, or false when the path
// is unprotected. Prefixes match on segment boundaries only, so /testsuite
// does not fall under /tests.
func (t *RouteTable) Match(path string) (RouteRule, bool) {
	for _, r := range t.rules {
		if !strings.HasPrefix(path, r.Prefix) {
			continue
		}
		if len(path) == len(r.Prefix) || path[len(r.Prefix)] == '/' {
			return r, true
		}
	}
	return RouteRule{}, false
}

// DefaultRedirectFor returns the canonical landing route for a role.
func (t *RouteTable) DefaultRedirectFor(role user.Role) string {
	if target, ok := t.redirects[role]; ok {
		return target
	}
	return t.redirects[user.RoleGuest]
}

// Validate checks the no-redirect-loop invariant: every role's default
// redirect must be a route that role can enter with its minimum permission
// set (no entitlement, no override). Run at startup; a failure here is a
// configuration error, not a runtime condition.
func (t *RouteTable) Validate() error {
	for role, target := range t.redirects {
		perms := Derive(role, false, false)
		rule, protected := t.Match(target)
		if protected && !perms.Has(rule.Required) {
			return fmt.Errorf("default redirect %s for role %s requires capability %s the role does not hold", target, role, rule.Required)
		}
	}
	return nil
}
