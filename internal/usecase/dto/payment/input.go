package paymentdto

type InitiatePaymentInput struct {
	OrderID     string
	Amount      float64
	Description string
	ReturnURL   string
}
