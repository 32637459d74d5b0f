package mappers

import (
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:         model.ID,
		TelegramID: model.TelegramID,
		Username:   model.Username,
		Email:      model.Email,
		Role:       domain.UserRole(model.Role),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       string(user.Role),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
