package models

import "time"

type TransactionModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	OrderID         string `gorm:"type:uuid;not null;index"`
	Type            string `gorm:"not null"`
	Amount          float64
	GatewayResponse string    `gorm:"type:jsonb"`
	CreatedAt       time.Time `gorm:"not null"`

	Order OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
