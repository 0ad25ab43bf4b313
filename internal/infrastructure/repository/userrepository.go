package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"aula/internal/domain/user"
	"aula/internal/infrastructure/persistence/mappers"
	"aula/internal/infrastructure/persistence/models"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// UserRepository is the gorm-backed implementation of user.Repository.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, log logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to create user", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"email":                model.Email,
			"name":                 model.Name,
			"role":                 model.Role,
			"status":               model.Status,
			"provider_customer_id": model.ProviderCustomerID,
			"password_hash":        model.PasswordHash,
			"version":              model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("user was modified concurrently")
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByUUID(ctx context.Context, uuid string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByProviderCustomerID(ctx context.Context, customerID string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("provider_customer_id = ?", customerID).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserModel{})
	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("id DESC").Limit(filter.PageSize).Offset(offset).Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
