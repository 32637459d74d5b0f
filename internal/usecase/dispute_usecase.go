package usecase

import (
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/oplata-app/escrow-service/internal/domain"
	publisher "github.com/oplata-app/escrow-service/internal/infrastructure/kafka"
	"github.com/oplata-app/escrow-service/internal/infrastructure/metrics"
	disputedto "github.com/oplata-app/escrow-service/internal/usecase/dto/dispute"
)

type DisputeUsecase interface {
	OpenDispute(input disputedto.OpenDisputeInput) error
	GetDisputeByOrderID(orderID string) (*domain.Dispute, error)
}

type DisputeEventPublisher interface {
	PublishDispute(topic string, event publisher.DisputeEvent) error
}

type DefaultDisputeUsecase struct {
	disputeRepo    domain.DisputeRepository
	orderRepo      domain.OrderRepository
	eventPublisher DisputeEventPublisher
	escrowMetrics  *metrics.EscrowMetrics
	eventTopic     string
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	orderRepo domain.OrderRepository,
	eventPublisher DisputeEventPublisher,
	escrowMetrics *metrics.EscrowMetrics,
	eventTopic string,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo:    disputeRepo,
		orderRepo:      orderRepo,
		eventPublisher: eventPublisher,
		escrowMetrics:  escrowMetrics,
		eventTopic:     eventTopic,
	}
}

// OpenDispute is deliberately permissive: order existence is the only
// precondition, the current status does not matter.
func (uc *DefaultDisputeUsecase) OpenDispute(input disputedto.OpenDisputeInput) error {
	order, err := uc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}

	now := time.Now()
	dispute := &domain.Dispute{
		ID:          idGenerator(),
		OrderID:     input.OrderID,
		InitiatorID: input.InitiatorID,
		Reason:      input.Reason,
		Status:      domain.DisputeOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	audit := newAuditEntry(input.OrderID, input.InitiatorID, domain.EventDisputeOpened, map[string]string{"reason": input.Reason})

	if err := uc.orderRepo.OpenDispute(input.OrderID, dispute, audit); err != nil {
		return err
	}

	if uc.escrowMetrics != nil {
		uc.escrowMetrics.RecordDisputeOpened(order.Currency)
	}
	if uc.eventPublisher != nil {
		go func(event publisher.DisputeEvent) {
			if err := uc.eventPublisher.PublishDispute(uc.eventTopic, event); err != nil {
				slog.Error("failed to publish kafka dispute event", "dispute_id", event.DisputeID, "error", err.Error())
			}
		}(publisher.DisputeEvent{
			DisputeID:   dispute.ID,
			OrderID:     dispute.OrderID,
			InitiatorID: dispute.InitiatorID,
			Reason:      dispute.Reason,
			Status:      string(dispute.Status),
		})
	}

	return nil
}

func (uc *DefaultDisputeUsecase) GetDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	return uc.disputeRepo.GetDisputeByOrderID(orderID)
}
