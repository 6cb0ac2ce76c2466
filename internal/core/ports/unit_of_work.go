package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events of every
// aggregate saved through its repositories are stored in the outbox as part
// of Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// PedidoRepository is bound to the transaction started by Begin.
	PedidoRepository() PedidoRepository

	// ProductoRepository is bound to the transaction started by Begin.
	ProductoRepository() ProductoRepository

	// UbicacionRepository is bound to the transaction started by Begin.
	UbicacionRepository() UbicacionRepository
}
