package models

import "time"

type DisputeModel struct {
	ID          string `gorm:"primaryKey"`
	OrderID     string `gorm:"type:uuid;not null;index"`
	InitiatorID string
	Reason      string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Order OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
