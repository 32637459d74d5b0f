package disputedto

type OpenDisputeInput struct {
	OrderID     string
	InitiatorID string
	Reason      string
}
