package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"aula/internal/domain/subscription"
	"aula/internal/infrastructure/persistence/models"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// WebhookEventRepository is the durable idempotency ledger. The unique index
// on event_id turns a replayed delivery into a duplicate key error, which
// Record reports as inserted=false.
type WebhookEventRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewWebhookEventRepository(db *gorm.DB, log logger.Interface) subscription.WebhookEventRepository {
	return &WebhookEventRepository{
		db:     db,
		logger: log,
	}
}

func (r *WebhookEventRepository) Record(ctx context.Context, entity *subscription.WebhookEvent) (bool, error) {
	model := &models.WebhookEventModel{
		EventID:     entity.EventID(),
		EventType:   entity.EventType(),
		ProcessedAt: entity.ProcessedAt(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return false, nil
		}
		r.logger.Errorw("failed to record webhook event", "event_id", entity.EventID(), "error", err)
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return true, nil
}

func (r *WebhookEventRepository) WasProcessed(ctx context.Context, eventID string) (bool, error) {
	var model models.WebhookEventModel
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check webhook event: %w", err)
	}
	return true, nil
}
