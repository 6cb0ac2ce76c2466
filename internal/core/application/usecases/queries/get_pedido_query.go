package queries

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrGetPedidoQueryIsNotConstructed = errors.New("GetPedidoQuery must be created via NewGetPedidoQuery constructor")

// GetPedidoQuery loads one order with its lines for the detail modal.
type GetPedidoQuery struct {
	pedidoID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetPedidoQuery(pedidoID kernel.ID) (GetPedidoQuery, error) {
	if err := pedidoID.Validate(); err != nil {
		return GetPedidoQuery{}, err
	}

	return GetPedidoQuery{
		pedidoID: pedidoID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetPedidoQuery) Validate() error {
	return q.guard.Validate(ErrGetPedidoQueryIsNotConstructed)
}

func (q GetPedidoQuery) PedidoID() kernel.ID {
	return q.pedidoID
}
