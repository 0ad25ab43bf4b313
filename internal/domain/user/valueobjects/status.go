package valueobjects

// Status is the lifecycle status of a user account.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is known.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended:
		return true
	default:
		return false
	}
}
