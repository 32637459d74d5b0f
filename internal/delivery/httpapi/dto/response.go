package dto

import (
	"encoding/json"
	"time"

	"github.com/oplata-app/escrow-service/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID         string `json:"id"`
	TelegramID int64  `json:"telegramId"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type GetUserResponse struct {
	User UserResponse `json:"user"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	BuyerID        string    `json:"buyerId"`
	SellerID       string    `json:"sellerId"`
	Amount         float64   `json:"amount"`
	Commission     float64   `json:"commission"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Currency       string    `json:"currency"`
	PaymentID      string    `json:"paymentId,omitempty"`
	PaymentURL     string    `json:"paymentUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	BuyerUsername  string    `json:"buyerUsername,omitempty"`
	SellerUsername string    `json:"sellerUsername,omitempty"`
}

type CreateOrderResponse struct {
	Order      OrderResponse `json:"order"`
	PaymentURL string        `json:"paymentUrl"`
}

type GetOrderResponse struct {
	Order OrderResponse `json:"order"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type ConfirmDeliveryResponse struct {
	Message      string  `json:"message"`
	SellerAmount float64 `json:"sellerAmount"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PaymentResponse struct {
	PaymentID  string  `json:"paymentId"`
	PaymentURL string  `json:"paymentUrl,omitempty"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount,omitempty"`
	Currency   string  `json:"currency,omitempty"`
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"orderId"`
	Type            string          `json:"type"`
	Amount          float64         `json:"amount"`
	GatewayResponse json.RawMessage `json:"gatewayResponse,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type AuditEntryResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	UserID    string          `json:"userId,omitempty"`
	EventType string          `json:"eventType"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type OrderHistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	AuditLog     []AuditEntryResponse  `json:"auditLog"`
}

type HealthResponse struct {
	Message     string            `json:"message"`
	TotalOrders int64             `json:"totalOrders"`
	Endpoints   map[string]string `json:"endpoints"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       string(user.Role),
	}
}

func ToOrderHistoryResponse(transactions []*domain.Transaction, auditLog []*domain.AuditLogEntry) OrderHistoryResponse {
	response := OrderHistoryResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
		AuditLog:     make([]AuditEntryResponse, len(auditLog)),
	}
	for i, txn := range transactions {
		response.Transactions[i] = TransactionResponse{
			ID:              txn.ID,
			OrderID:         txn.OrderID,
			Type:            string(txn.Type),
			Amount:          txn.Amount,
			GatewayResponse: rawOrNil(txn.GatewayResponse),
			CreatedAt:       txn.CreatedAt,
		}
	}
	for i, entry := range auditLog {
		response.AuditLog[i] = AuditEntryResponse{
			ID:        entry.ID,
			OrderID:   entry.OrderID,
			UserID:    entry.UserID,
			EventType: string(entry.EventType),
			Payload:   rawOrNil(entry.Payload),
			CreatedAt: entry.CreatedAt,
		}
	}
	return response
}

func rawOrNil(payload string) json.RawMessage {
	if payload == "" {
		return nil
	}
	return json.RawMessage(payload)
}

func ToOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID,
		BuyerID:        order.BuyerID,
		SellerID:       order.SellerID,
		Amount:         order.Amount,
		Commission:     order.Commission,
		Description:    order.Description,
		Status:         string(order.Status),
		Currency:       order.Currency,
		PaymentID:      order.PaymentID,
		PaymentURL:     order.PaymentURL,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		BuyerUsername:  order.BuyerUsername,
		SellerUsername: order.SellerUsername,
	}
}
