package kafka

type OrderEvent struct {
	OrderID    string  `json:"order_id"`
	BuyerID    string  `json:"buyer_id"`
	SellerID   string  `json:"seller_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	Commission float64 `json:"commission"`
	Currency   string  `json:"currency"`
}

type DisputeEvent struct {
	DisputeID   string `json:"dispute_id"`
	OrderID     string `json:"order_id"`
	InitiatorID string `json:"initiator_id"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}
