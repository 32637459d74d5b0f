package usecase

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/oplata-app/escrow-service/internal/domain"
	publisher "github.com/oplata-app/escrow-service/internal/infrastructure/kafka"
	"github.com/oplata-app/escrow-service/internal/infrastructure/metrics"
	orderdto "github.com/oplata-app/escrow-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input orderdto.CreateOrderInput) (*domain.Order, error)
	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrders(filters domain.OrderFilters) ([]*domain.Order, error)
	CountOrders() (int64, error)
	MarkDelivered(orderID string) error
	ConfirmDelivery(orderID string) (*orderdto.ConfirmDeliveryOutput, error)
}

type OrderEventPublisher interface {
	PublishOrder(topic string, event publisher.OrderEvent) error
}

type DefaultOrderUsecase struct {
	orderRepo         domain.OrderRepository
	eventPublisher    OrderEventPublisher
	escrowMetrics     *metrics.EscrowMetrics
	eventTopic        string
	commissionPercent float64
	currency          string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	eventPublisher OrderEventPublisher,
	escrowMetrics *metrics.EscrowMetrics,
	eventTopic string,
	commissionPercent float64,
	currency string,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		orderRepo:         orderRepo,
		eventPublisher:    eventPublisher,
		escrowMetrics:     escrowMetrics,
		eventTopic:        eventTopic,
		commissionPercent: commissionPercent,
		currency:          currency,
	}
}

func (uc *DefaultOrderUsecase) CreateOrder(input orderdto.CreateOrderInput) (*domain.Order, error) {
	if input.BuyerID == "" || input.SellerID == "" || input.Amount <= 0 || input.Description == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now()
	order := &domain.Order{
		ID:          uuid.NewString(),
		BuyerID:     input.BuyerID,
		SellerID:    input.SellerID,
		Amount:      input.Amount,
		Commission:  domain.CalculateCommission(input.Amount, uc.commissionPercent),
		Description: input.Description,
		Status:      domain.StatusCreated,
		Currency:    uc.currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	snapshot, _ := json.Marshal(order)
	audit := newAuditEntry(order.ID, input.BuyerID, domain.EventOrderCreated, json.RawMessage(snapshot))

	if err := uc.orderRepo.CreateOrder(order, audit); err != nil {
		return nil, err
	}

	if uc.escrowMetrics != nil {
		uc.escrowMetrics.RecordOrderCreated(order.Currency, order.Amount, order.Commission)
	}
	uc.publishOrderEvent(order)

	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.orderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrders(filters domain.OrderFilters) ([]*domain.Order, error) {
	return uc.orderRepo.GetOrders(filters)
}

func (uc *DefaultOrderUsecase) CountOrders() (int64, error) {
	return uc.orderRepo.CountOrders()
}

// MarkDelivered is the seller's "shipped" action, paid -> delivered.
func (uc *DefaultOrderUsecase) MarkDelivered(orderID string) error {
	order, err := uc.orderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if !domain.CanTransition(order.Status, domain.StatusDelivered) {
		return domain.ErrInvalidState
	}

	audit := newAuditEntry(orderID, order.SellerID, domain.EventOrderDelivered, map[string]string{"status": string(domain.StatusDelivered)})
	return uc.orderRepo.UpdateOrderStatus(orderID, order.Status, domain.StatusDelivered, audit)
}

// ConfirmDelivery completes the escrow: the order must be exactly in
// delivered status, the payout transaction is inserted in the same database
// transaction as the status update.
func (uc *DefaultOrderUsecase) ConfirmDelivery(orderID string) (*orderdto.ConfirmDeliveryOutput, error) {
	order, err := uc.orderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusDelivered {
		return nil, domain.ErrInvalidState
	}

	sellerAmount := order.SellerPayout()
	gatewayResponse, _ := json.Marshal(map[string]any{
		"status":    "success",
		"timestamp": time.Now(),
	})
	txn := &domain.Transaction{
		ID:              uuid.NewString(),
		OrderID:         orderID,
		Type:            domain.TxPayoutToSeller,
		Amount:          sellerAmount,
		GatewayResponse: string(gatewayResponse),
		CreatedAt:       time.Now(),
	}
	audit := newAuditEntry(orderID, order.BuyerID, domain.EventOrderCompleted, map[string]float64{"sellerAmount": sellerAmount})

	if err := uc.orderRepo.CompleteOrder(orderID, txn, audit); err != nil {
		return nil, err
	}

	if uc.escrowMetrics != nil {
		uc.escrowMetrics.RecordOrderCompleted(order.Currency, sellerAmount)
	}
	order.Status = domain.StatusCompleted
	uc.publishOrderEvent(order)

	return &orderdto.ConfirmDeliveryOutput{SellerAmount: sellerAmount}, nil
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.eventPublisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.eventPublisher.PublishOrder(uc.eventTopic, event); err != nil {
			slog.Error("failed to publish kafka order event", "order_id", event.OrderID, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:    order.ID,
		BuyerID:    order.BuyerID,
		SellerID:   order.SellerID,
		Status:     string(order.Status),
		Amount:     order.Amount,
		Commission: order.Commission,
		Currency:   order.Currency,
	})
}
