package repository

import (
	"errors"
	"fmt"

	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order, audit *domain.AuditLogEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMOrder(order)).Error; err != nil {
			return err
		}
		return tx.Create(mappers.ToGORMAuditEntry(audit)).Error
	})
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.Preload("Buyer").Preload("Seller").First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrders(filters domain.OrderFilters) ([]*domain.Order, error) {
	query := r.DB.Model(&models.OrderModel{}).Preload("Buyer").Preload("Seller")

	if filters.UserID != "" {
		query = query.Where("buyer_id = ? OR seller_id = ?", filters.UserID, filters.UserID)
	}

	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, nil
}

func (r *DefaultOrderRepository) CountOrders() (int64, error) {
	var total int64
	if err := r.DB.Model(&models.OrderModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// guardedStatusUpdate updates the status only when the row still holds the
// expected one. Zero rows affected mean a concurrent transition or a wrong
// lifecycle state.
func guardedStatusUpdate(tx *gorm.DB, orderID string, from, to domain.OrderStatus) error {
	res := tx.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, fromStatus, toStatus domain.OrderStatus, audit *domain.AuditLogEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardedStatusUpdate(tx, orderID, fromStatus, toStatus); err != nil {
			return err
		}
		return tx.Create(mappers.ToGORMAuditEntry(audit)).Error
	})
}

func (r *DefaultOrderRepository) AttachPayment(orderID string, fromStatus domain.OrderStatus, paymentID, paymentURL string, txn *domain.Transaction, audit *domain.AuditLogEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", orderID, fromStatus).
			Updates(map[string]interface{}{
				"status":      domain.StatusPending,
				"payment_id":  paymentID,
				"payment_url": paymentURL,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidState
		}
		if err := tx.Create(mappers.ToGORMTransaction(txn)).Error; err != nil {
			return err
		}
		return tx.Create(mappers.ToGORMAuditEntry(audit)).Error
	})
}

func (r *DefaultOrderRepository) CompleteOrder(orderID string, txn *domain.Transaction, audit *domain.AuditLogEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardedStatusUpdate(tx, orderID, domain.StatusDelivered, domain.StatusCompleted); err != nil {
			return err
		}
		if err := tx.Create(mappers.ToGORMTransaction(txn)).Error; err != nil {
			return err
		}
		return tx.Create(mappers.ToGORMAuditEntry(audit)).Error
	})
}

func (r *DefaultOrderRepository) OpenDispute(orderID string, dispute *domain.Dispute, audit *domain.AuditLogEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ?", orderID).
			Update("status", domain.StatusDispute)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOrderNotFound
		}
		if err := tx.Create(mappers.ToGORMDispute(dispute)).Error; err != nil {
			return err
		}
		return tx.Create(mappers.ToGORMAuditEntry(audit)).Error
	})
}

func (r *DefaultOrderRepository) MarkOrderPaid(orderID string, audit *domain.AuditLogEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardedStatusUpdate(tx, orderID, domain.StatusPending, domain.StatusPaid); err != nil {
			return err
		}
		return tx.Create(mappers.ToGORMAuditEntry(audit)).Error
	})
}
