package domain

import "context"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentCanceled  PaymentStatus = "canceled"
)

// Payment is the gateway's view of one payment attempt.
type Payment struct {
	ID              string
	Status          PaymentStatus
	Amount          float64
	Currency        string
	ConfirmationURL string
	OrderID         string
	RawResponse     string
}

type CreatePaymentInput struct {
	OrderID     string
	Amount      float64
	Description string
	ReturnURL   string
}

// PaymentGateway abstracts the external payment provider. No local state is
// mutated before a gateway call succeeds.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
}
