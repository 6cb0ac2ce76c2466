package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"

	"github.com/jonboulle/clockwork"
)

// RejectPedidoCommandHandler records the rejection. Rejecting twice succeeds.
type RejectPedidoCommandHandler struct {
	uowFactory PedidoUoWFactory
}

func NewRejectPedidoCommandHandler(uowFactory PedidoUoWFactory) RejectPedidoCommandHandler {
	return RejectPedidoCommandHandler{uowFactory: uowFactory}
}

func (h RejectPedidoCommandHandler) Handle(ctx context.Context, cmd RejectPedidoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePedido(ctx, h.uowFactory, cmd.PedidoID(), AnyFarmacia, func(p *pedido.Pedido) error {
		return p.Reject(cmd.CourierID())
	})
}

// DeliverPedidoCommandHandler closes a pedido; only its courier may do it.
type DeliverPedidoCommandHandler struct {
	uowFactory PedidoUoWFactory
	clock      clockwork.Clock
}

func NewDeliverPedidoCommandHandler(uowFactory PedidoUoWFactory, clock clockwork.Clock) DeliverPedidoCommandHandler {
	return DeliverPedidoCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DeliverPedidoCommandHandler) Handle(ctx context.Context, cmd DeliverPedidoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePedido(ctx, h.uowFactory, cmd.PedidoID(), AnyFarmacia, func(p *pedido.Pedido) error {
		return p.Deliver(cmd.CourierID(), h.clock.Now())
	})
}
