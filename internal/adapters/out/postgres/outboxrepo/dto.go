// Package outboxrepo stores domain events in the "outbox" table so they are
// committed together with the aggregate change that raised them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"farmadelivery/internal/core/domain/model/pedido"

	"github.com/google/uuid"
)

// OutboxDTO is one stored event.
type OutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventName   string     `gorm:"size:100"`
	AggregateID string     `gorm:"size:40;index"`
	Payload     string     `gorm:"type:jsonb"`
	OccurredAt  time.Time  `gorm:"index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

// StatusChangedPayload is the JSON body of a pedido.status_changed event.
type StatusChangedPayload struct {
	EventID    string    `json:"event_id"`
	PedidoID   int64     `json:"pedido_id"`
	Numero     string    `json:"numero"`
	FarmaciaID int64     `json:"farmacia_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	CourierID  *int64    `json:"courier_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func fromStatusChanged(e pedido.StatusChanged) (OutboxDTO, error) {
	payload := StatusChangedPayload{
		EventID:    e.EventID.String(),
		PedidoID:   e.PedidoID.Int64(),
		Numero:     e.Numero,
		FarmaciaID: e.FarmaciaID.Int64(),
		From:       e.From.String(),
		To:         e.To.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.CourierID != nil {
		id := e.CourierID.Int64()
		payload.CourierID = &id
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxDTO{}, err
	}

	return OutboxDTO{
		ID:          e.EventID.Bytes(),
		EventName:   e.EventName(),
		AggregateID: e.PedidoID.String(),
		Payload:     string(body),
		OccurredAt:  e.OccurredAt,
	}, nil
}
