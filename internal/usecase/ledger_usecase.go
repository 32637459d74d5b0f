package usecase

import (
	"github.com/oplata-app/escrow-service/internal/domain"
	orderdto "github.com/oplata-app/escrow-service/internal/usecase/dto/order"
)

type LedgerUsecase interface {
	GetOrderHistory(orderID string) (*orderdto.OrderHistoryOutput, error)
}

// DefaultLedgerUsecase reads back the financial trail written by the order
// lifecycle transactions.
type DefaultLedgerUsecase struct {
	transactionRepo domain.TransactionRepository
	auditRepo       domain.AuditLogRepository
}

func NewDefaultLedgerUsecase(transactionRepo domain.TransactionRepository, auditRepo domain.AuditLogRepository) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
	}
}

func (uc *DefaultLedgerUsecase) GetOrderHistory(orderID string) (*orderdto.OrderHistoryOutput, error) {
	transactions, err := uc.transactionRepo.GetOrderTransactions(orderID)
	if err != nil {
		return nil, err
	}
	auditLog, err := uc.auditRepo.GetOrderAuditLog(orderID)
	if err != nil {
		return nil, err
	}
	return &orderdto.OrderHistoryOutput{
		Transactions: transactions,
		AuditLog:     auditLog,
	}, nil
}
