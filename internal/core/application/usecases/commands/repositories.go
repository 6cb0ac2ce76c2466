// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit
// of work, load the aggregate, apply one domain transition, persist, commit.
package commands

import (
	"context"

	"farmadelivery/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PedidoRepoFactory provides access to the pedido repository within a transaction.
	PedidoRepoFactory interface {
		PedidoRepository() ports.PedidoRepository
	}

	// ProductoRepoFactory provides access to the producto repository within a transaction.
	ProductoRepoFactory interface {
		ProductoRepository() ports.ProductoRepository
	}

	// UbicacionRepoFactory provides access to the courier position repository within a transaction.
	UbicacionRepoFactory interface {
		UbicacionRepository() ports.UbicacionRepository
	}

	// PedidoUoW manages transactions for pedido-only operations.
	PedidoUoW interface {
		TxManager
		PedidoRepoFactory
	}

	// PedidoUoWFactory creates new pedido unit of work instances.
	PedidoUoWFactory interface {
		Create() PedidoUoW
	}

	// ProductoUoW manages transactions for inventory operations.
	ProductoUoW interface {
		TxManager
		ProductoRepoFactory
	}

	// ProductoUoWFactory creates new producto unit of work instances.
	ProductoUoWFactory interface {
		Create() ProductoUoW
	}

	// UbicacionUoW manages transactions for courier position reports.
	UbicacionUoW interface {
		TxManager
		UbicacionRepoFactory
	}

	// UbicacionUoWFactory creates new courier position unit of work instances.
	UbicacionUoWFactory interface {
		Create() UbicacionUoW
	}
)
