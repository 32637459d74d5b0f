package domain

import "errors"

var (
	ErrValidation        = errors.New("missing or malformed required fields")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidState      = errors.New("invalid order status for this action")
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrGateway           = errors.New("payment gateway error")
)
