package models

import (
	"time"

	"github.com/oplata-app/escrow-service/internal/domain"
)

type OrderModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	BuyerID     string `gorm:"type:uuid;index:idx_buyer"`
	SellerID    string `gorm:"type:uuid;index:idx_seller"`
	Amount      float64
	Commission  float64
	Description string
	Status      domain.OrderStatus `gorm:"index:idx_status"`
	Currency    string
	PaymentID   string `gorm:"index:idx_payment_id"`
	PaymentURL  string
	CreatedAt   time.Time `gorm:"index:idx_created_at"`
	UpdatedAt   time.Time

	Buyer  UserModel `gorm:"foreignKey:BuyerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Seller UserModel `gorm:"foreignKey:SellerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
