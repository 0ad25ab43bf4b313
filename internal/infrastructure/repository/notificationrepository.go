package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"aula/internal/domain/notification"
	"aula/internal/infrastructure/persistence/mappers"
	"aula/internal/infrastructure/persistence/models"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// NotificationRepository is the gorm-backed implementation of
// notification.Repository.
type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, log logger.Interface) notification.Repository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: log,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, entity *notification.Notification) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map notification entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, entity *notification.Notification) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map notification entity: %w", err)
	}

	err = r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"read_status": model.ReadStatus,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notificationModels []*models.NotificationModel
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&notificationModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(notificationModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND read_status = ?", userID, string(notification.ReadStatusUnread)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
