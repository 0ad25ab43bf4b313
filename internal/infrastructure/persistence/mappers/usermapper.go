package mappers

import (
	"fmt"

	"aula/internal/domain/user"
	vo "aula/internal/domain/user/valueobjects"
	"aula/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to map stored email: %w", err)
	}

	role := user.ParseRole(model.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("stored role %q is not valid", model.Role)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.UUID,
		email,
		model.Name,
		role,
		vo.Status(model.Status),
		model.ProviderCustomerID,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:                 entity.ID(),
		UUID:               entity.UUID(),
		Email:              entity.Email().String(),
		Name:               entity.Name(),
		Role:               entity.Role().String(),
		Status:             entity.Status().String(),
		ProviderCustomerID: entity.ProviderCustomerID(),
		PasswordHash:       entity.PasswordHash(),
		Version:            entity.Version(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
