package mappers

import (
	"fmt"
	"time"

	"casefile/internal/domain/user"
	vo "casefile/internal/domain/user/valueobjects"
	"casefile/internal/infrastructure/persistence/models"
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
		ID:               u.ID(),
		Email:            u.Email().String(),
		PasswordHash:     u.PasswordHash(),
		DisplayName:      u.DisplayName(),
		ProfileCompleted: u.ProfileCompleted(),
		CreatedAt:        u.CreatedAt().UnixMilli(),
		UpdatedAt:        u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in database: %w", err)
	}

	u, err := user.ReconstructUser(
		model.ID,
		email,
		model.PasswordHash,
		model.DisplayName,
		model.ProfileCompleted,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}

	return u, nil
}
