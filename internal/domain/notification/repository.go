package notification

import "context"

// Repository defines persistence operations for notifications.
type Repository interface {
	// Create persists a new notification and assigns its ID.
	Create(ctx context.Context, n *Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, n *Notification) error

	// GetByID retrieves a notification by ID.
	GetByID(ctx context.Context, id uint) (*Notification, error)

	// ListByUser returns a user's notifications, newest first, with total.
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*Notification, int64, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uint) (int64, error)
}
