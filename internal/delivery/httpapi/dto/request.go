package dto

type LoginRequest struct {
	TelegramID int64             `json:"telegramId"`
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	AuthData   map[string]string `json:"authData"`
}

type CreateOrderRequest struct {
	BuyerID     string  `json:"buyerId"`
	SellerID    string  `json:"sellerId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type OpenDisputeRequest struct {
	InitiatorID string `json:"initiatorId"`
	Reason      string `json:"reason"`
}

type CreatePaymentRequest struct {
	OrderID     string  `json:"orderId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ReturnURL   string  `json:"returnUrl"`
}
