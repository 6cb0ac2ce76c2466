package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

// changePedido loads one pedido, applies change and saves it in a single
// transaction. Nothing is written when the pedido is outside scope or
// change fails.
func changePedido(
	ctx context.Context,
	uowFactory PedidoUoWFactory,
	pedidoID kernel.ID,
	scope PharmacyScope,
	change func(p *pedido.Pedido) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PedidoRepository()

	p, err := repo.Get(ctx, pedidoID)
	if err != nil {
		return err
	}

	if err = scope.check("pedido", p.ID(), p.Farmacia().ID); err != nil {
		return err
	}

	if err = change(p); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
