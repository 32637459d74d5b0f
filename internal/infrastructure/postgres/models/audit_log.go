package models

import "time"

type AuditLogModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;not null;index"`
	UserID    string
	EventType string    `gorm:"not null"`
	Payload   string    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
}
