package queries

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"
	"farmadelivery/internal/pkg/guard"
)

var ErrGetInventarioQueryIsNotConstructed = errors.New(
	"GetInventarioQuery must be created via NewGetInventarioQuery constructor",
)

// GetInventarioQuery reads a pharmacy's products grouped by stock level.
type GetInventarioQuery struct {
	farmaciaID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetInventarioQuery(farmaciaID kernel.ID) (GetInventarioQuery, error) {
	if err := farmaciaID.Validate(); err != nil {
		return GetInventarioQuery{}, err
	}

	return GetInventarioQuery{
		farmaciaID: farmaciaID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetInventarioQuery) Validate() error {
	return q.guard.Validate(ErrGetInventarioQueryIsNotConstructed)
}

func (q GetInventarioQuery) FarmaciaID() kernel.ID {
	return q.farmaciaID
}

type ProductoView struct {
	ID     kernel.ID
	Nombre string
	Precio kernel.Money
	Stock  int
	Level  producto.StockLevel
}

// InventarioSection is one stock level with its products sorted by name.
type InventarioSection struct {
	Level     producto.StockLevel
	Productos []ProductoView
}

// GetInventarioQueryResponse always has one section per level, in
// producto.Levels order, even when a section is empty.
type GetInventarioQueryResponse struct {
	Sections []InventarioSection
}
