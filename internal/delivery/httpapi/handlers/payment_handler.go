package handlers

import (
	"net/http"

	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/dto"
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/usecase"
	paymentdto "github.com/oplata-app/escrow-service/internal/usecase/dto/payment"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

func (h *PaymentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createPayment(w, r)
	case http.MethodGet:
		h.getPaymentStatus(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *PaymentHandler) createPayment(w http.ResponseWriter, r *http.Request) {
	var request dto.CreatePaymentRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	payment, err := h.paymentUsecase.InitiatePayment(r.Context(), paymentdto.InitiatePaymentInput{
		OrderID:     request.OrderID,
		Amount:      request.Amount,
		Description: request.Description,
		ReturnURL:   request.ReturnURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentResponse{
		PaymentID:  payment.ID,
		PaymentURL: payment.ConfirmationURL,
		Status:     string(payment.Status),
	})
}

func (h *PaymentHandler) getPaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("paymentId")
	if paymentID == "" {
		writeError(w, domain.ErrValidation)
		return
	}

	payment, err := h.paymentUsecase.SyncPaymentStatus(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentResponse{
		PaymentID: payment.ID,
		Status:    string(payment.Status),
		Amount:    payment.Amount,
		Currency:  payment.Currency,
	})
}
