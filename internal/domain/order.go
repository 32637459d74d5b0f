package domain

import (
	"math"
	"time"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusDelivered OrderStatus = "delivered"
	StatusCompleted OrderStatus = "completed"
	StatusDispute   OrderStatus = "dispute"
)

// transitions is the full lifecycle table. A dispute may be opened from any
// status: the only precondition is that the order exists.
var transitions = map[OrderStatus][]OrderStatus{
	StatusCreated:   {StatusPending, StatusDispute},
	StatusPending:   {StatusPaid, StatusDispute},
	StatusPaid:      {StatusDelivered, StatusDispute},
	StatusDelivered: {StatusCompleted, StatusDispute},
	StatusCompleted: {StatusDispute},
	StatusDispute:   {},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID          string
	BuyerID     string
	SellerID    string
	Amount      float64
	Commission  float64
	Description string
	Status      OrderStatus
	Currency    string
	PaymentID   string
	PaymentURL  string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Usernames joined from the users table, filled by read queries only.
	BuyerUsername  string
	SellerUsername string
}

// SellerPayout is the amount released to the seller on completion.
func (o *Order) SellerPayout() float64 {
	return o.Amount - o.Commission
}

// CalculateCommission rounds half-up to two decimal places. Fixed at order
// creation, never recomputed.
func CalculateCommission(amount, percent float64) float64 {
	return math.Round(amount*(percent/100)*100) / 100
}

type OrderFilters struct {
	UserID string
}

type OrderRepository interface {
	CreateOrder(order *Order, audit *AuditLogEntry) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrders(filters OrderFilters) ([]*Order, error)
	CountOrders() (int64, error)

	// UpdateOrderStatus performs a guarded update: the row is touched only
	// when its current status equals fromStatus. Zero rows affected map to
	// ErrInvalidState. The audit entry is written in the same transaction.
	UpdateOrderStatus(orderID string, fromStatus, toStatus OrderStatus, audit *AuditLogEntry) error

	// AttachPayment moves the order to pending and stores the gateway
	// payment id/url, together with the ledger rows, in one transaction.
	AttachPayment(orderID string, fromStatus OrderStatus, paymentID, paymentURL string, tx *Transaction, audit *AuditLogEntry) error

	// CompleteOrder moves delivered -> completed and inserts the
	// payout_to_seller transaction atomically.
	CompleteOrder(orderID string, tx *Transaction, audit *AuditLogEntry) error

	// OpenDispute sets the dispute status and inserts the dispute row
	// atomically.
	OpenDispute(orderID string, dispute *Dispute, audit *AuditLogEntry) error

	// MarkOrderPaid is a guarded pending -> paid update driven by a
	// successful gateway status poll.
	MarkOrderPaid(orderID string, audit *AuditLogEntry) error
}
