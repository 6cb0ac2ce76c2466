package pedido

import (
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
)

// StatusChanged is raised by every successful transition of a Pedido.
type StatusChanged struct {
	EventID    kernel.UUID
	PedidoID   kernel.ID
	Numero     string
	FarmaciaID kernel.ID
	From       Status
	To         Status
	CourierID  *kernel.ID
	OccurredAt time.Time
}

func newStatusChanged(p *Pedido, from, to Status, at time.Time) StatusChanged {
	var courierID *kernel.ID
	if p.courierID != nil {
		id := *p.courierID
		courierID = &id
	}
	return StatusChanged{
		EventID:    kernel.NewUUID(),
		PedidoID:   p.id,
		Numero:     p.numero,
		FarmaciaID: p.farmacia.ID,
		From:       from,
		To:         to,
		CourierID:  courierID,
		OccurredAt: at,
	}
}

// EventName is the outbox/kafka event type.
func (e StatusChanged) EventName() string {
	return "pedido.status_changed"
}
