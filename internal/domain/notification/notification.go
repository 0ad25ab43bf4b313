// Package notification contains the user notification aggregate emitted by
// the billing reconciler and surfaced in the user panel.
package notification

import (
	"fmt"
	"time"
)

// Type classifies a notification.
type Type string

const (
	TypeSubscriptionUpdated   Type = "subscription_updated"
	TypeSubscriptionCancelled Type = "subscription_cancelled"
	TypePaymentSucceeded      Type = "payment_succeeded"
	TypePaymentFailed         Type = "payment_failed"
	TypeAccount               Type = "account"
)

// IsValid reports whether the type is known.
func (t Type) IsValid() bool {
	switch t {
	case TypeSubscriptionUpdated, TypeSubscriptionCancelled, TypePaymentSucceeded, TypePaymentFailed, TypeAccount:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// ReadStatus marks whether the user has seen a notification.
type ReadStatus string

const (
	ReadStatusUnread ReadStatus = "unread"
	ReadStatusRead   ReadStatus = "read"
)

// Notification represents a single user notification. Content is markdown;
// rendering and sanitization happen at the delivery boundary.
type Notification struct {
	id         uint
	userID     uint
	notifType  Type
	title      string
	content    string
	readStatus ReadStatus
	createdAt  time.Time
	updatedAt  time.Time
}

// NewNotification creates an unread notification.
func NewNotification(userID uint, notifType Type, title, content string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length")
	}

	now := time.Now().UTC()
	return &Notification{
		userID:     userID,
		notifType:  notifType,
		title:      title,
		content:    content,
		readStatus: ReadStatusUnread,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructNotification reconstructs a notification from persistence.
func ReconstructNotification(
	id, userID uint,
	notifType Type,
	title, content string,
	readStatus ReadStatus,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	return &Notification{
		id:         id,
		userID:     userID,
		notifType:  notifType,
		title:      title,
		content:    content,
		readStatus: readStatus,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the notification ID.
func (n *Notification) ID() uint { return n.id }

// SetID assigns the ID once, after the initial insert.
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// UserID returns the recipient user id.
func (n *Notification) UserID() uint { return n.userID }

// Type returns the notification type.
func (n *Notification) Type() Type { return n.notifType }

// Title returns the notification title.
func (n *Notification) Title() string { return n.title }

// Content returns the markdown content.
func (n *Notification) Content() string { return n.content }

// ReadStatus returns whether the notification has been read.
func (n *Notification) ReadStatus() ReadStatus { return n.readStatus }

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// UpdatedAt returns the last update timestamp.
func (n *Notification) UpdatedAt() time.Time { return n.updatedAt }

// MarkRead marks the notification as read.
func (n *Notification) MarkRead() {
	if n.readStatus == ReadStatusRead {
		return
	}
	n.readStatus = ReadStatusRead
	n.updatedAt = time.Now().UTC()
}
