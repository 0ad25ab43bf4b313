package mappers

import (
	"fmt"

	"aula/internal/domain/subscription"
	"aula/internal/infrastructure/persistence/models"
)

type PaymentRecordMapper interface {
	ToEntity(model *models.PaymentRecordModel) (*subscription.PaymentRecord, error)
	ToModel(entity *subscription.PaymentRecord) (*models.PaymentRecordModel, error)
	ToEntities(models []*models.PaymentRecordModel) ([]*subscription.PaymentRecord, error)
}

type paymentRecordMapper struct{}

func NewPaymentRecordMapper() PaymentRecordMapper {
	return &paymentRecordMapper{}
}

func (m *paymentRecordMapper) ToEntity(model *models.PaymentRecordModel) (*subscription.PaymentRecord, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructPaymentRecord(
		model.ID,
		model.UserID,
		model.ProviderSubscriptionID,
		model.ProviderInvoiceID,
		model.AmountCents,
		model.Currency,
		model.PaidAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payment record: %w", err)
	}

	return entity, nil
}

func (m *paymentRecordMapper) ToModel(entity *subscription.PaymentRecord) (*models.PaymentRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentRecordModel{
		ID:                     entity.ID(),
		UserID:                 entity.UserID(),
		ProviderSubscriptionID: entity.ProviderSubscriptionID(),
		ProviderInvoiceID:      entity.ProviderInvoiceID(),
		AmountCents:            entity.AmountCents(),
		Currency:               entity.Currency(),
		PaidAt:                 entity.PaidAt(),
		CreatedAt:              entity.CreatedAt(),
	}, nil
}

func (m *paymentRecordMapper) ToEntities(paymentModels []*models.PaymentRecordModel) ([]*subscription.PaymentRecord, error) {
	entities := make([]*subscription.PaymentRecord, 0, len(paymentModels))
	for _, model := range paymentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
