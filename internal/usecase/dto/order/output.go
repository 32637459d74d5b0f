package orderdto

import "github.com/oplata-app/escrow-service/internal/domain"

type ConfirmDeliveryOutput struct {
	SellerAmount float64
}

type OrderHistoryOutput struct {
	Transactions []*domain.Transaction
	AuditLog     []*domain.AuditLogEntry
}
