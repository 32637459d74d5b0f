package models

import "time"

type UserModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	TelegramID int64  `gorm:"uniqueIndex:idx_telegram_id"`
	Username   string
	Email      string
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
