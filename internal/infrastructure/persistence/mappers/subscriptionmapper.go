package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"aula/internal/domain/subscription"
	vo "aula/internal/domain/subscription/valueobjects"
	"aula/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode subscription metadata: %w", err)
		}
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		vo.ParseStatus(model.Status),
		model.PlanID,
		model.ProviderCustomerID,
		model.ProviderSubscriptionID,
		model.CurrentPeriodEnd,
		model.LastPaymentAt,
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(entity.Metadata()) > 0 {
		raw, err := json.Marshal(entity.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to encode subscription metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}

	return &models.SubscriptionModel{
		ID:                     entity.ID(),
		UserID:                 entity.UserID(),
		Status:                 entity.Status().String(),
		PlanID:                 entity.PlanID(),
		ProviderCustomerID:     entity.ProviderCustomerID(),
		ProviderSubscriptionID: entity.ProviderSubscriptionID(),
		CurrentPeriodEnd:       entity.CurrentPeriodEnd(),
		LastPaymentAt:          entity.LastPaymentAt(),
		Metadata:               metadata,
		Version:                entity.Version(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}, nil
}

func (m *subscriptionMapper) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
