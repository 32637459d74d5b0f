package handlers

import (
	"fmt"
	"net/http"

	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/dto"
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/usecase"
	disputedto "github.com/oplata-app/escrow-service/internal/usecase/dto/dispute"
	orderdto "github.com/oplata-app/escrow-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	orderUsecase   usecase.OrderUsecase
	disputeUsecase usecase.DisputeUsecase
	ledgerUsecase  usecase.LedgerUsecase
	checkoutURL    string
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, disputeUsecase usecase.DisputeUsecase, ledgerUsecase usecase.LedgerUsecase, checkoutURL string) *OrderHandler {
	return &OrderHandler{
		orderUsecase:   orderUsecase,
		disputeUsecase: disputeUsecase,
		ledgerUsecase:  ledgerUsecase,
		checkoutURL:    checkoutURL,
	}
}

// HandleCollection serves POST /orders and GET /orders.
func (h *OrderHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createOrder(w, r)
	case http.MethodGet:
		h.listOrders(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateOrderRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	order, err := h.orderUsecase.CreateOrder(orderdto.CreateOrderInput{
		BuyerID:     request.BuyerID,
		SellerID:    request.SellerID,
		Amount:      request.Amount,
		Description: request.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Order:      dto.ToOrderResponse(order),
		PaymentURL: fmt.Sprintf("%s/%s", h.checkoutURL, order.ID),
	})
}

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.GetOrders(domain.OrderFilters{
		UserID: r.URL.Query().Get("userId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	orderResponses := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = dto.ToOrderResponse(order)
	}
	writeJSON(w, http.StatusOK, dto.ListOrdersResponse{Orders: orderResponses})
}

// HandleOrder serves GET /orders/{id}.
func (h *OrderHandler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	order, err := h.orderUsecase.GetOrderByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.GetOrderResponse{Order: dto.ToOrderResponse(order)})
}

// HandleDeliver serves POST /orders/{id}/deliver.
func (h *OrderHandler) HandleDeliver(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	if err := h.orderUsecase.MarkDelivered(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Order marked as delivered"})
}

// HandleConfirm serves POST /orders/{id}/confirm.
func (h *OrderHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	output, err := h.orderUsecase.ConfirmDelivery(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConfirmDeliveryResponse{
		Message:      "Order completed successfully",
		SellerAmount: output.SellerAmount,
	})
}

// HandleHistory serves GET /orders/{id}/history, the transaction and audit
// trail of one order.
func (h *OrderHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	orderID := r.PathValue("id")
	if _, err := h.orderUsecase.GetOrderByID(orderID); err != nil {
		writeError(w, err)
		return
	}

	history, err := h.ledgerUsecase.GetOrderHistory(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToOrderHistoryResponse(history.Transactions, history.AuditLog))
}

// HandleDispute serves POST /orders/{id}/dispute.
func (h *OrderHandler) HandleDispute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var request dto.OpenDisputeRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	err := h.disputeUsecase.OpenDispute(disputedto.OpenDisputeInput{
		OrderID:     r.PathValue("id"),
		InitiatorID: request.InitiatorID,
		Reason:      request.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Dispute opened successfully"})
}
