// Package user contains the user aggregate. Identity (id, email) is owned
// by the identity provider; the role and the payment-provider customer link
// are attached here.
package user

import (
	"fmt"
	"time"

	"aula/internal/domain/shared/events"
	vo "aula/internal/domain/user/valueobjects"
)

// User represents the user aggregate root.
type User struct {
	id                 uint
	uuid               string
	email              *vo.Email
	name               string
	role               Role
	status             vo.Status
	providerCustomerID *string
	passwordHash       *string
	createdAt          time.Time
	updatedAt          time.Time
	version            int
	events             []events.DomainEvent
}

// NewUser creates a new user aggregate. New users start as students; the
// guest role exists only as a resolution fallback and is never persisted.
func NewUser(uuid string, email *vo.Email, name string) (*User, error) {
	if uuid == "" {
		return nil, fmt.Errorf("user UUID is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()
	u := &User{
		uuid:      uuid,
		email:     email,
		name:      name,
		role:      RoleStudent,
		status:    vo.StatusActive,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}

	u.recordEvent(NewUserCreatedEvent(u.uuid, email.String(), u.role))
	return u, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	uuid string,
	email *vo.Email,
	name string,
	role Role,
	status vo.Status,
	providerCustomerID *string,
	passwordHash *string,
	createdAt, updatedAt time.Time,
	version int,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                 id,
		uuid:               uuid,
		email:              email,
		name:               name,
		role:               role,
		status:             status,
		providerCustomerID: providerCustomerID,
		passwordHash:       passwordHash,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		version:            version,
	}, nil
}

// ID returns the user ID.
func (u *User) ID() uint { return u.id }

// SetID assigns the ID once, after the initial insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UUID returns the stable external identifier.
func (u *User) UUID() string { return u.uuid }

// Email returns the user's email.
func (u *User) Email() *vo.Email { return u.email }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Role returns the database-stored role record.
func (u *User) Role() Role { return u.role }

// Status returns the account status.
func (u *User) Status() vo.Status { return u.status }

// ProviderCustomerID returns the linked payment-provider customer id, if any.
func (u *User) ProviderCustomerID() *string { return u.providerCustomerID }

// PasswordHash returns the stored password hash, if any.
func (u *User) PasswordHash() *string { return u.passwordHash }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last update timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Version returns the optimistic-lock version.
func (u *User) Version() int { return u.version }

// ChangeRole updates the stored role record. Guest cannot be persisted.
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if role == RoleGuest {
		return fmt.Errorf("guest is a fallback role and cannot be assigned")
	}
	if role == u.role {
		return nil
	}

	previous := u.role
	u.role = role
	u.updatedAt = time.Now().UTC()
	u.recordEvent(NewUserRoleChangedEvent(u.uuid, previous, role))
	return nil
}

// LinkProviderCustomer records the payment-provider customer id. Relinking
// to a different customer is rejected; the link is set once per checkout.
func (u *User) LinkProviderCustomer(customerID string) error {
	if customerID == "" {
		return fmt.Errorf("provider customer ID is required")
	}
	if u.providerCustomerID != nil {
		if *u.providerCustomerID == customerID {
			return nil
		}
		return fmt.Errorf("user is already linked to provider customer %s", *u.providerCustomerID)
	}

	u.providerCustomerID = &customerID
	u.updatedAt = time.Now().UTC()
	u.recordEvent(NewUserCustomerLinkedEvent(u.uuid, customerID))
	return nil
}

// SetPasswordHash stores a new password hash.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = &hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// Suspend deactivates the account.
func (u *User) Suspend() {
	if u.status == vo.StatusSuspended {
		return
	}
	u.status = vo.StatusSuspended
	u.updatedAt = time.Now().UTC()
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.status == vo.StatusActive
}

// Events returns and clears the recorded domain events.
func (u *User) Events() []events.DomainEvent {
	evts := u.events
	u.events = nil
	return evts
}

func (u *User) recordEvent(event events.DomainEvent) {
	u.events = append(u.events, event)
}
