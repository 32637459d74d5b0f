package mappers

import (
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:          model.ID,
		OrderID:     model.OrderID,
		InitiatorID: model.InitiatorID,
		Reason:      model.Reason,
		Status:      domain.DisputeStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:          dispute.ID,
		OrderID:     dispute.OrderID,
		InitiatorID: dispute.InitiatorID,
		Reason:      dispute.Reason,
		Status:      string(dispute.Status),
		CreatedAt:   dispute.CreatedAt,
		UpdatedAt:   dispute.UpdatedAt,
	}
}
