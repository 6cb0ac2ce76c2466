package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var (
	ErrRejectPedidoCommandIsNotConstructed = errors.New(
		"RejectPedidoCommand must be created via NewRejectPedidoCommand constructor",
	)
	ErrDeliverPedidoCommandIsNotConstructed = errors.New(
		"DeliverPedidoCommand must be created via NewDeliverPedidoCommand constructor",
	)
)

// RejectPedidoCommand hides an available pedido from one courier.
type RejectPedidoCommand struct {
	pedidoID  kernel.ID
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewRejectPedidoCommand(pedidoID, courierID kernel.ID) (RejectPedidoCommand, error) {
	if err := errors.Join(pedidoID.Validate(), courierID.Validate()); err != nil {
		return RejectPedidoCommand{}, err
	}
	return RejectPedidoCommand{
		pedidoID:  pedidoID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RejectPedidoCommand) Validate() error {
	return c.guard.Validate(ErrRejectPedidoCommandIsNotConstructed)
}

func (c RejectPedidoCommand) PedidoID() kernel.ID  { return c.pedidoID }
func (c RejectPedidoCommand) CourierID() kernel.ID { return c.courierID }

// DeliverPedidoCommand is the courier confirming a successful delivery.
type DeliverPedidoCommand struct {
	pedidoID  kernel.ID
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeliverPedidoCommand(pedidoID, courierID kernel.ID) (DeliverPedidoCommand, error) {
	if err := errors.Join(pedidoID.Validate(), courierID.Validate()); err != nil {
		return DeliverPedidoCommand{}, err
	}
	return DeliverPedidoCommand{
		pedidoID:  pedidoID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverPedidoCommand) Validate() error {
	return c.guard.Validate(ErrDeliverPedidoCommandIsNotConstructed)
}

func (c DeliverPedidoCommand) PedidoID() kernel.ID  { return c.pedidoID }
func (c DeliverPedidoCommand) CourierID() kernel.ID { return c.courierID }
