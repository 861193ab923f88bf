package mappers

import (
	"fmt"
	"time"

	"waitline/internal/domain/user"
	vo "waitline/internal/domain/user/valueobjects"
	"waitline/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to map user (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		model.Name,
		model.PasswordHash,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
