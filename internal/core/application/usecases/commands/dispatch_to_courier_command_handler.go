package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"

	"github.com/jonboulle/clockwork"
)

// DispatchToCourierCommandHandler puts a prepared pedido EnCamino.
// The pedido has no courier yet; the first courier that accepts it gets it.
type DispatchToCourierCommandHandler struct {
	uowFactory PedidoUoWFactory
	clock      clockwork.Clock
}

func NewDispatchToCourierCommandHandler(uowFactory PedidoUoWFactory, clock clockwork.Clock) DispatchToCourierCommandHandler {
	return DispatchToCourierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DispatchToCourierCommandHandler) Handle(ctx context.Context, cmd DispatchToCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePedido(ctx, h.uowFactory, cmd.PedidoID(), cmd.Scope(), func(p *pedido.Pedido) error {
		return p.DispatchToCourier(h.clock.Now())
	})
}
