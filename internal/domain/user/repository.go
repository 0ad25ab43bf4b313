package user

import "context"

// ListFilter narrows and paginates user listings.
type ListFilter struct {
	Role     *Role
	Page     int
	PageSize int
}

// Repository defines persistence operations for the user aggregate.
type Repository interface {
	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, u *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// GetByID retrieves a user by internal ID.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUUID retrieves a user by external identifier.
	GetByUUID(ctx context.Context, uuid string) (*User, error)

	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByProviderCustomerID retrieves the user linked to a payment-provider
	// customer id.
	GetByProviderCustomerID(ctx context.Context, customerID string) (*User, error)

	// List returns users matching the filter with the total count.
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}
