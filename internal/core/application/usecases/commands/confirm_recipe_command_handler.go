package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"

	"github.com/jonboulle/clockwork"
)

// ConfirmRecipeCommandHandler moves a Pendiente pedido to Preparando.
type ConfirmRecipeCommandHandler struct {
	uowFactory PedidoUoWFactory
	clock      clockwork.Clock
}

func NewConfirmRecipeCommandHandler(uowFactory PedidoUoWFactory, clock clockwork.Clock) ConfirmRecipeCommandHandler {
	return ConfirmRecipeCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ConfirmRecipeCommandHandler) Handle(ctx context.Context, cmd ConfirmRecipeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changePedido(ctx, h.uowFactory, cmd.PedidoID(), cmd.Scope(), func(p *pedido.Pedido) error {
		return p.ConfirmRecipe(h.clock.Now())
	})
}
