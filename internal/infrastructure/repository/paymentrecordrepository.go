package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"aula/internal/domain/subscription"
	"aula/internal/infrastructure/persistence/mappers"
	"aula/internal/infrastructure/persistence/models"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// PaymentRecordRepository is the gorm-backed implementation of the
// append-only payment log.
type PaymentRecordRepository struct {
	db     *gorm.DB
	mapper mappers.PaymentRecordMapper
	logger logger.Interface
}

func NewPaymentRecordRepository(db *gorm.DB, log logger.Interface) subscription.PaymentRecordRepository {
	return &PaymentRecordRepository{
		db:     db,
		mapper: mappers.NewPaymentRecordMapper(),
		logger: log,
	}
}

func (r *PaymentRecordRepository) Create(ctx context.Context, entity *subscription.PaymentRecord) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map payment record: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to create payment record",
			"provider_invoice_id", model.ProviderInvoiceID,
			"error", err,
		)
		return fmt.Errorf("failed to create payment record: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set payment record ID: %w", err)
	}

	return nil
}

func (r *PaymentRecordRepository) GetByProviderInvoiceID(ctx context.Context, invoiceID string) (*subscription.PaymentRecord, error) {
	var model models.PaymentRecordModel
	err := r.db.WithContext(ctx).
		Where("provider_invoice_id = ?", invoiceID).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("payment record not found")
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PaymentRecordRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*subscription.PaymentRecord, error) {
	var paymentModels []*models.PaymentRecordModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("paid_at DESC").
		Limit(limit).
		Find(&paymentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payment records: %w", err)
	}
	return r.mapper.ToEntities(paymentModels)
}
