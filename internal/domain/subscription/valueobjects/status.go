// Package valueobjects contains the value objects of the subscription aggregate.
package valueobjects

// Status mirrors the payment provider's subscription status enum. A user
// with no subscription record is equivalent to StatusNone.
type Status string

const (
	StatusActive    Status = "active"
	StatusTrialing  Status = "trialing"
	StatusPastDue   Status = "past_due"
	StatusCancelled Status = "cancelled"
	StatusNone      Status = "none"
)

// ValidStatuses is the set of statuses accepted from persistence and from
// provider events.
var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusTrialing:  true,
	StatusPastDue:   true,
	StatusCancelled: true,
	StatusNone:      true,
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is known.
func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

// IsEntitling reports whether the status grants paid-content entitlement
// (still subject to the period-end check on the aggregate).
func (s Status) IsEntitling() bool {
	return s == StatusActive || s == StatusTrialing
}

// ParseStatus maps a provider status string onto the domain enum. Statuses
// the platform does not model (incomplete, unpaid, paused) collapse onto
// the closest non-entitling value.
func ParseStatus(s string) Status {
	status := Status(s)
	if status.IsValid() {
		return status
	}
	switch s {
	case "canceled": // provider spells it with one l
		return StatusCancelled
	case "incomplete", "incomplete_expired", "unpaid", "paused":
		return StatusNone
	default:
		return StatusNone
	}
}
