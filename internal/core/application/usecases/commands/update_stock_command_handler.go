package commands

import (
	"context"

	"github.com/jonboulle/clockwork"
)

// UpdateStockCommandHandler persists a new stock quantity.
type UpdateStockCommandHandler struct {
	uowFactory ProductoUoWFactory
	clock      clockwork.Clock
}

func NewUpdateStockCommandHandler(uowFactory ProductoUoWFactory, clock clockwork.Clock) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) error {
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

	repo := uow.ProductoRepository()

	p, err := repo.Get(ctx, cmd.ProductoID())
	if err != nil {
		return err
	}

	if err = cmd.Scope().check("producto", p.ID(), p.FarmaciaID()); err != nil {
		return err
	}

	if err = p.UpdateStock(cmd.Stock(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
