package handlers

import (
	"time"

	"aula/internal/domain/notification"
	"aula/internal/domain/subscription"
	"aula/internal/domain/user"
)

// UserResponse is the API shape of a user account.
type UserResponse struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		UUID:      u.UUID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		Status:    u.Status().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func toUserResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

// SubscriptionResponse is the API shape of a subscription record.
type SubscriptionResponse struct {
	ID               uint       `json:"id"`
	Status           string     `json:"status"`
	PlanID           string     `json:"plan_id"`
	CurrentPeriodEnd time.Time  `json:"current_period_end"`
	LastPaymentAt    *time.Time `json:"last_payment_at,omitempty"`
}

func toSubscriptionResponse(s *subscription.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		ID:               s.ID(),
		Status:           s.Status().String(),
		PlanID:           s.PlanID(),
		CurrentPeriodEnd: s.CurrentPeriodEnd(),
		LastPaymentAt:    s.LastPaymentAt(),
	}
}

// NotificationResponse is the API shape of a notification.
type NotificationResponse struct {
	ID         uint      `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ReadStatus string    `json:"read_status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Content:    n.Content(),
		ReadStatus: string(n.ReadStatus()),
		CreatedAt:  n.CreatedAt(),
	}
}

func toNotificationResponses(notifications []*notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	return out
}

// TokenResponse carries the issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
