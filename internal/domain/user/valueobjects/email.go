// Package valueobjects contains the value objects of the user aggregate.
package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, normalized email address.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address.
func NewEmail(value string) (*Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(normalized) > 254 {
		return nil, fmt.Errorf("email too long")
	}
	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}
	return &Email{value: normalized}, nil
}

// String returns the normalized email address.
func (e *Email) String() string {
	return e.value
}

// Equals compares two emails by normalized value.
func (e *Email) Equals(other *Email) bool {
	if other == nil {
		return false
	}
	return e.value == other.value
}
