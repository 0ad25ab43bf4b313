package user

// Role is the canonical platform role. Exactly one role is authoritative
// per user at any instant.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleStudent Role = "student"
	RoleAcademy Role = "academy"
	RoleAdmin   Role = "admin"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStudent, RoleAcademy, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role is admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsElevated reports whether the role grants access beyond guest.
func (r Role) IsElevated() bool {
	return r.IsValid() && r != RoleGuest
}

// ParseRole parses a stored or claimed role value. Unknown or malformed
// values fall back to guest so that access control fails closed.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleGuest
}
