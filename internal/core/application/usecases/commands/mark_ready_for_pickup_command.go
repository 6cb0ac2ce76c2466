package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrMarkReadyForPickupCommandIsNotConstructed = errors.New(
	"MarkReadyForPickupCommand must be created via NewMarkReadyForPickupCommand constructor",
)

// MarkReadyForPickupCommand leaves a prepared pedido waiting for a courier.
type MarkReadyForPickupCommand struct {
	pedidoID kernel.ID
	scope    PharmacyScope

	guard guard.ConstructorGuard
}

func NewMarkReadyForPickupCommand(pedidoID kernel.ID, scope PharmacyScope) (MarkReadyForPickupCommand, error) {
	if err := pedidoID.Validate(); err != nil {
		return MarkReadyForPickupCommand{}, err
	}

	return MarkReadyForPickupCommand{
		pedidoID: pedidoID,
		scope:    scope,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForPickupCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForPickupCommandIsNotConstructed)
}

func (c MarkReadyForPickupCommand) PedidoID() kernel.ID {
	return c.pedidoID
}

func (c MarkReadyForPickupCommand) Scope() PharmacyScope {
	return c.scope
}
