package mappers

import (
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		OrderID:         model.OrderID,
		Type:            domain.TransactionType(model.Type),
		Amount:          model.Amount,
		GatewayResponse: model.GatewayResponse,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              tx.ID,
		OrderID:         tx.OrderID,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		GatewayResponse: tx.GatewayResponse,
		CreatedAt:       tx.CreatedAt,
	}
}

func ToDomainAuditEntry(model *models.AuditLogModel) *domain.AuditLogEntry {
	return &domain.AuditLogEntry{
		ID:        model.ID,
		OrderID:   model.OrderID,
		UserID:    model.UserID,
		EventType: domain.AuditEventType(model.EventType),
		Payload:   model.Payload,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMAuditEntry(entry *domain.AuditLogEntry) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:        entry.ID,
		OrderID:   entry.OrderID,
		UserID:    entry.UserID,
		EventType: string(entry.EventType),
		Payload:   entry.Payload,
		CreatedAt: entry.CreatedAt,
	}
}
