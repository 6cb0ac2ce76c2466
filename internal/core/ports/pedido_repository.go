// Package ports defines the contracts between the core and its adapters.
// Repositories persist aggregates; the outbox ports move recorded domain
// events from the database to the message broker.
package ports

import (
	"context"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

// PedidoRepository persists pedido aggregates.
type PedidoRepository interface {
	// Add persists a new pedido.
	Add(ctx context.Context, aggregate *pedido.Pedido) error

	// Update persists changes to an existing pedido. The stored version must
	// match the aggregate version, otherwise errs.ErrVersionIsInvalid is
	// returned and nothing is written.
	Update(ctx context.Context, aggregate *pedido.Pedido) error

	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.ID) (*pedido.Pedido, error)

	// GetActiveForCourier returns the pedidos the courier is delivering.
	// Inside a transaction it also serializes callers for the same courier
	// until that transaction ends, which keeps the one-active-order check
	// and the assignment atomic.
	GetActiveForCourier(ctx context.Context, courierID kernel.ID) ([]*pedido.Pedido, error)
}
