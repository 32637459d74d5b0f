package domain

import "time"

type TransactionType string

const (
	TxPaymentInitiated TransactionType = "payment_initiated"
	TxPayoutToSeller   TransactionType = "payout_to_seller"
)

// Transaction is an append-only financial event owned by an order.
// Rows are never updated or deleted.
type Transaction struct {
	ID              string
	OrderID         string
	Type            TransactionType
	Amount          float64
	GatewayResponse string
	CreatedAt       time.Time
}

type TransactionRepository interface {
	GetOrderTransactions(orderID string) ([]*Transaction, error)
}
