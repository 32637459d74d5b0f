package handlers

import (
	"net/http"

	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/dto"
	"github.com/oplata-app/escrow-service/internal/usecase"
)

type HealthHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewHealthHandler(orderUsecase usecase.OrderUsecase) *HealthHandler {
	return &HealthHandler{orderUsecase: orderUsecase}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	totalOrders, err := h.orderUsecase.CountOrders()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Message:     "OPLATA API v1.0",
		TotalOrders: totalOrders,
		Endpoints: map[string]string{
			"health":          "GET /",
			"auth":            "POST /auth",
			"createOrder":     "POST /orders",
			"getOrder":        "GET /orders/:id",
			"markDelivered":   "POST /orders/:id/deliver",
			"confirmDelivery": "POST /orders/:id/confirm",
			"openDispute":     "POST /orders/:id/dispute",
			"orderHistory":    "GET /orders/:id/history",
			"createPayment":   "POST /payments",
			"paymentStatus":   "GET /payments?paymentId=",
		},
	})
}
