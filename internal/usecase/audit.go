package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/oplata-app/escrow-service/internal/domain"
)

func newAuditEntry(orderID, userID string, eventType domain.AuditEventType, payload any) *domain.AuditLogEntry {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		payloadBytes = []byte("{}")
	}
	return &domain.AuditLogEntry{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		UserID:    userID,
		EventType: eventType,
		Payload:   string(payloadBytes),
		CreatedAt: time.Now(),
	}
}
