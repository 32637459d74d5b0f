package repository

import (
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// Transactions and audit entries are written inside order lifecycle
// transactions (see order_repo.go). These repositories only read the trail
// back for operators.

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) GetOrderTransactions(orderID string) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.DB.Where("order_id = ?", orderID).Order("created_at ASC").Find(&txModels).Error; err != nil {
		return nil, err
	}
	txs := make([]*domain.Transaction, len(txModels))
	for i, txModel := range txModels {
		txs[i] = mappers.ToDomainTransaction(&txModel)
	}
	return txs, nil
}

type DefaultAuditLogRepository struct {
	DB *gorm.DB
}

func NewDefaultAuditLogRepository(db *gorm.DB) *DefaultAuditLogRepository {
	return &DefaultAuditLogRepository{DB: db}
}

func (r *DefaultAuditLogRepository) GetOrderAuditLog(orderID string) ([]*domain.AuditLogEntry, error) {
	var entryModels []models.AuditLogModel
	if err := r.DB.Where("order_id = ?", orderID).Order("created_at ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]*domain.AuditLogEntry, len(entryModels))
	for i, entryModel := range entryModels {
		entries[i] = mappers.ToDomainAuditEntry(&entryModel)
	}
	return entries, nil
}
