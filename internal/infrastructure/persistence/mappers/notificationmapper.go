package mappers

import (
	"fmt"

	"aula/internal/domain/notification"
	"aula/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type notificationMapper struct{}

func NewNotificationMapper() NotificationMapper {
	return &notificationMapper{}
}

func (m *notificationMapper) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notification.Type(model.Type),
		model.Title,
		model.Content,
		notification.ReadStatus(model.ReadStatus),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *notificationMapper) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NotificationModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Type:       entity.Type().String(),
		Title:      entity.Title(),
		Content:    entity.Content(),
		ReadStatus: string(entity.ReadStatus()),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *notificationMapper) ToEntities(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
