package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"

	"github.com/jonboulle/clockwork"
)

// MarkReadyForPickupCommandHandler moves a pedido in preparation to Listo, where couriers can see it.
type MarkReadyForPickupCommandHandler struct {
	uowFactory PedidoUoWFactory
	clock      clockwork.Clock
}

func NewMarkReadyForPickupCommandHandler(uowFactory PedidoUoWFactory, clock clockwork.Clock) MarkReadyForPickupCommandHandler {
	return MarkReadyForPickupCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h MarkReadyForPickupCommandHandler) Handle(ctx context.Context, cmd MarkReadyForPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePedido(ctx, h.uowFactory, cmd.PedidoID(), cmd.Scope(), func(p *pedido.Pedido) error {
		return p.MarkReadyForPickup(h.clock.Now())
	})
}
