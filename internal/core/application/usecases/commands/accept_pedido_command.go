package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrAcceptPedidoCommandIsNotConstructed = errors.New(
	"AcceptPedidoCommand must be created via NewAcceptPedidoCommand constructor",
)

// AcceptPedidoCommand is a courier taking an available pedido.
type AcceptPedidoCommand struct { //nolint:recvcheck //using for validation
	pedidoID  kernel.ID
	courierID kernel.ID

	guard guard.ConstructorGuard
}

// NewAcceptPedidoCommand validates both identifiers.
func NewAcceptPedidoCommand(pedidoID, courierID kernel.ID) (AcceptPedidoCommand, error) {
	cmd := AcceptPedidoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPedidoID(pedidoID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AcceptPedidoCommand{}, err
	}

	return cmd, nil
}

func (c AcceptPedidoCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPedidoCommandIsNotConstructed)
}

func (c AcceptPedidoCommand) PedidoID() kernel.ID {
	return c.pedidoID
}

func (c AcceptPedidoCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c *AcceptPedidoCommand) setPedidoID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.pedidoID = id
	return nil
}

func (c *AcceptPedidoCommand) setCourierID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}
