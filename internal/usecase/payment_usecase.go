package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/metrics"
	paymentdto "github.com/oplata-app/escrow-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, input paymentdto.InitiatePaymentInput) (*domain.Payment, error)
	SyncPaymentStatus(ctx context.Context, paymentID string) (*domain.Payment, error)
}

type DefaultPaymentUsecase struct {
	orderRepo     domain.OrderRepository
	gateway       domain.PaymentGateway
	escrowMetrics *metrics.EscrowMetrics
}

func NewDefaultPaymentUsecase(
	orderRepo domain.OrderRepository,
	gateway domain.PaymentGateway,
	escrowMetrics *metrics.EscrowMetrics,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		orderRepo:     orderRepo,
		gateway:       gateway,
		escrowMetrics: escrowMetrics,
	}
}

// InitiatePayment is at-most-once per order: an order already pending with a
// stored payment id returns that payment instead of hitting the gateway
// again. No local state is touched before the gateway call succeeds.
func (uc *DefaultPaymentUsecase) InitiatePayment(ctx context.Context, input paymentdto.InitiatePaymentInput) (*domain.Payment, error) {
	if input.OrderID == "" || input.Amount <= 0 {
		return nil, domain.ErrValidation
	}

	order, err := uc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.StatusPending && order.PaymentID != "" {
		return &domain.Payment{
			ID:              order.PaymentID,
			Status:          domain.PaymentPending,
			Amount:          order.Amount,
			Currency:        order.Currency,
			ConfirmationURL: order.PaymentURL,
			OrderID:         order.ID,
		}, nil
	}

	if !domain.CanTransition(order.Status, domain.StatusPending) {
		return nil, domain.ErrInvalidState
	}

	description := input.Description
	if description == "" {
		description = order.Description
	}

	payment, err := uc.gateway.CreatePayment(ctx, domain.CreatePaymentInput{
		OrderID:     input.OrderID,
		Amount:      input.Amount,
		Description: description,
		ReturnURL:   input.ReturnURL,
	})
	if err != nil {
		if uc.escrowMetrics != nil {
			uc.escrowMetrics.RecordGatewayError("create_payment")
		}
		return nil, err
	}

	txn := &domain.Transaction{
		ID:              uuid.NewString(),
		OrderID:         input.OrderID,
		Type:            domain.TxPaymentInitiated,
		Amount:          input.Amount,
		GatewayResponse: payment.RawResponse,
		CreatedAt:       time.Now(),
	}
	audit := newAuditEntry(input.OrderID, "", domain.EventPaymentCreated, map[string]string{"paymentId": payment.ID})

	if err := uc.orderRepo.AttachPayment(input.OrderID, order.Status, payment.ID, payment.ConfirmationURL, txn, audit); err != nil {
		return nil, err
	}

	return payment, nil
}

// SyncPaymentStatus polls the gateway and, when the payment succeeded, moves
// the referenced order from pending to paid.
func (uc *DefaultPaymentUsecase) SyncPaymentStatus(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, domain.ErrValidation
	}

	started := time.Now()
	payment, err := uc.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if uc.escrowMetrics != nil {
			uc.escrowMetrics.RecordGatewayError("get_payment")
		}
		return nil, err
	}
	if uc.escrowMetrics != nil {
		uc.escrowMetrics.RecordPaymentPollDuration(string(payment.Status), time.Since(started).Seconds())
	}

	if payment.Status != domain.PaymentSucceeded || payment.OrderID == "" {
		return payment, nil
	}

	order, err := uc.orderRepo.GetOrderByID(payment.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return payment, nil
		}
		return nil, err
	}
	if order.Status != domain.StatusPending {
		// Already paid or moved on, the poll is a no-op.
		return payment, nil
	}

	audit := newAuditEntry(order.ID, "", domain.EventPaymentSucceeded, json.RawMessage(payment.RawResponse))
	if err := uc.orderRepo.MarkOrderPaid(order.ID, audit); err != nil {
		return nil, err
	}

	return payment, nil
}
