package commands

import (
	"context"

	"farmadelivery/internal/core/domain/services"

	"github.com/jonboulle/clockwork"
)

// AcceptPedidoCommandHandler assigns an available pedido to the courier.
// The courier's active pedidos are read in the same transaction, so the
// one-active-order rule and the assignment are checked together.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCourierHasActiveOrder):
//	    // "Solo puedes tener un pedido activo a la vez"
//	case errors.Is(err, pedido.ErrCourierAlreadyAssigned):
//	    // another courier was faster
//	case err != nil:
//	    return err
//	}
type AcceptPedidoCommandHandler struct {
	uowFactory PedidoUoWFactory
	dispatcher services.CourierDispatcher
	clock      clockwork.Clock
}

func NewAcceptPedidoCommandHandler(
	uowFactory PedidoUoWFactory,
	dispatcher services.CourierDispatcher,
	clock clockwork.Clock,
) AcceptPedidoCommandHandler {
	return AcceptPedidoCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

func (h AcceptPedidoCommandHandler) Handle(ctx context.Context, cmd AcceptPedidoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PedidoRepository()

	active, err := repo.GetActiveForCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	p, err := repo.Get(ctx, cmd.PedidoID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Accept(p, cmd.CourierID(), active, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
