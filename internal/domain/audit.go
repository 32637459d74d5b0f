package domain

import "time"

type AuditEventType string

const (
	EventOrderCreated     AuditEventType = "order_created"
	EventPaymentCreated   AuditEventType = "payment_created"
	EventPaymentSucceeded AuditEventType = "payment_succeeded"
	EventOrderDelivered   AuditEventType = "order_delivered"
	EventOrderCompleted   AuditEventType = "order_completed"
	EventDisputeOpened    AuditEventType = "dispute_opened"
)

// AuditLogEntry is an append-only trail of every state-changing action,
// read back only through the order history endpoint.
type AuditLogEntry struct {
	ID        string
	OrderID   string
	UserID    string
	EventType AuditEventType
	Payload   string
	CreatedAt time.Time
}

type AuditLogRepository interface {
	GetOrderAuditLog(orderID string) ([]*AuditLogEntry, error)
}
