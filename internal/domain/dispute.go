package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen DisputeStatus = "open"
)

type Dispute struct {
	ID          string
	OrderID     string
	InitiatorID string
	Reason      string
	Status      DisputeStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DisputeRepository interface {
	GetDisputeByOrderID(orderID string) (*Dispute, error)
}
