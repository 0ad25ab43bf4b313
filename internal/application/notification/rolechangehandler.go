package notification

import (
	"context"
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/domain/shared/events"
	"aula/internal/domain/user"
	"aula/internal/shared/logger"
)

// RoleChangeHandler turns role change events into in-app notifications so
// the affected user learns about the change on their next visit.
type RoleChangeHandler struct {
	userRepo user.Repository
	notifier *Service
	logger   logger.Interface
}

func NewRoleChangeHandler(userRepo user.Repository, notifier *Service, logger logger.Interface) *RoleChangeHandler {
	return &RoleChangeHandler{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (h *RoleChangeHandler) CanHandle(eventType string) bool {
	return eventType == user.EventTypeUserRoleChanged
}

func (h *RoleChangeHandler) Handle(event events.DomainEvent) error {
	evt, ok := event.(*user.UserRoleChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	ctx := context.Background()
	u, err := h.userRepo.GetByUUID(ctx, evt.GetAggregateID())
	if err != nil || u == nil {
		h.logger.Warnw("role change event for unknown user",
			"user_uuid", evt.GetAggregateID(),
			"error", err,
		)
		return nil
	}

	content := fmt.Sprintf("Your account role changed from **%s** to **%s**.", evt.PreviousRole, evt.NewRole)
	if err := h.notifier.NotifyUser(ctx, u.ID(), notification.TypeAccount, "Account role updated", content); err != nil {
		h.logger.Warnw("failed to record role change notification",
			"user_id", u.ID(),
			"error", err,
		)
	}
	return nil
}
