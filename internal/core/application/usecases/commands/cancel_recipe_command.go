package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrCancelRecipeCommandIsNotConstructed = errors.New(
	"CancelRecipeCommand must be created via NewCancelRecipeCommand constructor",
)

// CancelRecipeCommand rejects the prescription, cancelling the pedido.
type CancelRecipeCommand struct {
	pedidoID kernel.ID
	scope    PharmacyScope

	guard guard.ConstructorGuard
}

func NewCancelRecipeCommand(pedidoID kernel.ID, scope PharmacyScope) (CancelRecipeCommand, error) {
	if err := pedidoID.Validate(); err != nil {
		return CancelRecipeCommand{}, err
	}

	return CancelRecipeCommand{
		pedidoID: pedidoID,
		scope:    scope,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRecipeCommand) Validate() error {
	return c.guard.Validate(ErrCancelRecipeCommandIsNotConstructed)
}

func (c CancelRecipeCommand) PedidoID() kernel.ID {
	return c.pedidoID
}

func (c CancelRecipeCommand) Scope() PharmacyScope {
	return c.scope
}
