package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"
	"farmadelivery/internal/pkg/guard"
)

var ErrUpdateStockCommandIsNotConstructed = errors.New(
	"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
)

// UpdateStockCommand overwrites the stock of one product.
type UpdateStockCommand struct {
	productoID kernel.ID
	stock      int
	scope      PharmacyScope

	guard guard.ConstructorGuard
}

func NewUpdateStockCommand(productoID kernel.ID, stock int, scope PharmacyScope) (UpdateStockCommand, error) {
	if err := errors.Join(productoID.Validate(), producto.ValidateStock(stock)); err != nil {
		return UpdateStockCommand{}, err
	}

	return UpdateStockCommand{
		productoID: productoID,
		stock:      stock,
		scope:      scope,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

func (c UpdateStockCommand) ProductoID() kernel.ID {
	return c.productoID
}

func (c UpdateStockCommand) Stock() int {
	return c.stock
}

func (c UpdateStockCommand) Scope() PharmacyScope {
	return c.scope
}
