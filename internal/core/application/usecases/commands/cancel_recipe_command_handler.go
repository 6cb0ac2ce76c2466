package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"

	"github.com/jonboulle/clockwork"
)

// CancelRecipeCommandHandler cancels a pedido that was not dispatched yet.
type CancelRecipeCommandHandler struct {
	uowFactory PedidoUoWFactory
	clock      clockwork.Clock
}

func NewCancelRecipeCommandHandler(uowFactory PedidoUoWFactory, clock clockwork.Clock) CancelRecipeCommandHandler {
	return CancelRecipeCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CancelRecipeCommandHandler) Handle(ctx context.Context, cmd CancelRecipeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePedido(ctx, h.uowFactory, cmd.PedidoID(), cmd.Scope(), func(p *pedido.Pedido) error {
		return p.CancelRecipe(h.clock.Now())
	})
}
