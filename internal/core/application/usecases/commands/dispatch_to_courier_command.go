package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrDispatchToCourierCommandIsNotConstructed = errors.New(
	"DispatchToCourierCommand must be created via NewDispatchToCourierCommand constructor",
)

// DispatchToCourierCommand records that the pharmacy handed the pedido to a courier.
type DispatchToCourierCommand struct {
	pedidoID kernel.ID
	scope    PharmacyScope

	guard guard.ConstructorGuard
}

func NewDispatchToCourierCommand(pedidoID kernel.ID, scope PharmacyScope) (DispatchToCourierCommand, error) {
	if err := pedidoID.Validate(); err != nil {
		return DispatchToCourierCommand{}, err
	}

	return DispatchToCourierCommand{
		pedidoID: pedidoID,
		scope:    scope,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchToCourierCommand) Validate() error {
	return c.guard.Validate(ErrDispatchToCourierCommandIsNotConstructed)
}

func (c DispatchToCourierCommand) PedidoID() kernel.ID {
	return c.pedidoID
}

func (c DispatchToCourierCommand) Scope() PharmacyScope {
	return c.scope
}
