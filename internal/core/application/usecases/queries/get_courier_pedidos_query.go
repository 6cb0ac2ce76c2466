package queries

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var (
	ErrGetAvailablePedidosQueryIsNotConstructed = errors.New(
		"GetAvailablePedidosQuery must be created via NewGetAvailablePedidosQuery constructor",
	)
	ErrGetActivePedidosQueryIsNotConstructed = errors.New(
		"GetActivePedidosQuery must be created via NewGetActivePedidosQuery constructor",
	)
)

// GetAvailablePedidosQuery lists the orders a courier may still take.
type GetAvailablePedidosQuery struct {
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetAvailablePedidosQuery(courierID kernel.ID) (GetAvailablePedidosQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAvailablePedidosQuery{}, err
	}

	return GetAvailablePedidosQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailablePedidosQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePedidosQueryIsNotConstructed)
}

func (q GetAvailablePedidosQuery) CourierID() kernel.ID {
	return q.courierID
}

// GetActivePedidosQuery lists the orders a courier is delivering.
type GetActivePedidosQuery struct {
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetActivePedidosQuery(courierID kernel.ID) (GetActivePedidosQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetActivePedidosQuery{}, err
	}

	return GetActivePedidosQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetActivePedidosQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePedidosQueryIsNotConstructed)
}

func (q GetActivePedidosQuery) CourierID() kernel.ID {
	return q.courierID
}
