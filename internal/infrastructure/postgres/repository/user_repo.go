package repository

import (
	"errors"

	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.Create(userModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultUserRepository) UpdateProfile(userID string, username, email string) error {
	updates := map[string]interface{}{}
	if username != "" {
		updates["username"] = username
	}
	if email != "" {
		updates["email"] = email
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&models.UserModel{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetUserByTelegramID(telegramID int64) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}
