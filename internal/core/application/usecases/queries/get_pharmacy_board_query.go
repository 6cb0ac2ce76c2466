package queries

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrGetPharmacyBoardQueryIsNotConstructed = errors.New(
	"GetPharmacyBoardQuery must be created via NewGetPharmacyBoardQuery constructor",
)

// GetPharmacyBoardQuery reads the two columns of one pharmacy: new orders
// waiting for a prescription check and orders being prepared.
type GetPharmacyBoardQuery struct {
	farmaciaID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetPharmacyBoardQuery(farmaciaID kernel.ID) (GetPharmacyBoardQuery, error) {
	if err := farmaciaID.Validate(); err != nil {
		return GetPharmacyBoardQuery{}, err
	}

	return GetPharmacyBoardQuery{
		farmaciaID: farmaciaID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetPharmacyBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmacyBoardQueryIsNotConstructed)
}

func (q GetPharmacyBoardQuery) FarmaciaID() kernel.ID {
	return q.farmaciaID
}

// GetPharmacyBoardQueryResponse holds both columns, oldest first.
type GetPharmacyBoardQueryResponse struct {
	Nuevos     []PedidoView
	Preparando []PedidoView
}
