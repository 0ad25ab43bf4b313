package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"aula/internal/domain/subscription"
	"aula/internal/infrastructure/persistence/mappers"
	"aula/internal/infrastructure/persistence/models"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// SubscriptionRepository is the gorm-backed implementation of
// subscription.Repository.
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, log logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: log,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to create subscription",
			"provider_subscription_id", model.ProviderSubscriptionID,
			"error", err,
		)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"status":             model.Status,
			"plan_id":            model.PlanID,
			"current_period_end": model.CurrentPeriodEnd,
			"last_payment_at":    model.LastPaymentAt,
			"metadata":           model.Metadata,
			"version":            model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("subscription was modified concurrently")
	}

	return nil
}

// GetByUserID returns the newest record when a user has more than one.
func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// ListLapsed feeds the periodic entitlement sweep. Records are returned
// oldest period end first so repeated sweeps make progress under a limit.
func (r *SubscriptionRepository) ListLapsed(ctx context.Context, asOf time.Time, limit int) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{"active", "trialing"}).
		Where("current_period_end < ?", asOf).
		Order("current_period_end ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lapsed subscriptions: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepository) GetByProviderSubscriptionID(ctx context.Context, providerSubscriptionID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("provider_subscription_id = ?", providerSubscriptionID).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model)
}
