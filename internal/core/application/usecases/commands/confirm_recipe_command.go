package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrConfirmRecipeCommandIsNotConstructed = errors.New(
	"ConfirmRecipeCommand must be created via NewConfirmRecipeCommand constructor",
)

// ConfirmRecipeCommand accepts the prescription of a new pedido and starts its preparation.
//
// Example:
//
//	cmd, err := NewConfirmRecipeCommand(kernel.MustNewID(42), AnyFarmacia)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewConfirmRecipeCommandHandler(uowFactory, clockwork.NewRealClock())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("confirm recipe: %w", err)
//	}
type ConfirmRecipeCommand struct {
	pedidoID kernel.ID
	scope    PharmacyScope

	guard guard.ConstructorGuard
}

func NewConfirmRecipeCommand(pedidoID kernel.ID, scope PharmacyScope) (ConfirmRecipeCommand, error) {
	if err := pedidoID.Validate(); err != nil {
		return ConfirmRecipeCommand{}, err
	}

	return ConfirmRecipeCommand{
		pedidoID: pedidoID,
		scope:    scope,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRecipeCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRecipeCommandIsNotConstructed)
}

func (c ConfirmRecipeCommand) PedidoID() kernel.ID {
	return c.pedidoID
}

func (c ConfirmRecipeCommand) Scope() PharmacyScope {
	return c.scope
}
