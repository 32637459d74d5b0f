package mappers

import (
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:             model.ID,
		BuyerID:        model.BuyerID,
		SellerID:       model.SellerID,
		Amount:         model.Amount,
		Commission:     model.Commission,
		Description:    model.Description,
		Status:         model.Status,
		Currency:       model.Currency,
		PaymentID:      model.PaymentID,
		PaymentURL:     model.PaymentURL,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
		BuyerUsername:  model.Buyer.Username,
		SellerUsername: model.Seller.Username,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:          order.ID,
		BuyerID:     order.BuyerID,
		SellerID:    order.SellerID,
		Amount:      order.Amount,
		Commission:  order.Commission,
		Description: order.Description,
		Status:      order.Status,
		Currency:    order.Currency,
		PaymentID:   order.PaymentID,
		PaymentURL:  order.PaymentURL,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
