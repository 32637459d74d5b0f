package orderdto

type CreateOrderInput struct {
	BuyerID     string
	SellerID    string
	Amount      float64
	Description string
}
