// Package postgres provides the GORM implementation of the unit of work.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it after Begin share that transaction, and every aggregate they save is
// tracked. On Commit the pending domain events of the tracked aggregates
// are written to the outbox table inside the same transaction, so a status
// change and its event are stored atomically.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	p, err := uow.PedidoRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err := p.ConfirmRecipe(now); err != nil {
//	    return err
//	}
//	if err := uow.PedidoRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance belongs to a single goroutine.
package postgres

import (
	"context"

	"farmadelivery/internal/adapters/out/postgres/outboxrepo"
	"farmadelivery/internal/adapters/out/postgres/pedidorepo"
	"farmadelivery/internal/adapters/out/postgres/productorepo"
	"farmadelivery/internal/adapters/out/postgres/ubicacionrepo"
	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is an aggregate that records pedido status changes.
type eventSource interface {
	DomainEvents() []pedido.StatusChanged
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]any, 0),
	}
}

// GormUnitOfWork coordinates a GORM transaction and the aggregates saved in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []any
}

// Begin starts the transaction. Calling it again while a transaction is
// active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the pending domain events of every tracked aggregate in the
// outbox and commits. Events are cleared from the aggregates only after the
// commit succeeds.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources := uow.eventSources()
	var events []pedido.StatusChanged
	for _, s := range sources {
		events = append(events, s.DomainEvents()...)
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, events...); err != nil {
		uow.tx.Rollback()
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	if err != nil {
		return err
	}

	for _, s := range sources {
		s.ClearDomainEvents()
	}

	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when nothing is active, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

// PedidoRepository uses the active transaction, or the pool when none is active.
func (uow *GormUnitOfWork) PedidoRepository() ports.PedidoRepository {
	return pedidorepo.NewGormPedidoRepository(uow.conn(), uow)
}

// ProductoRepository uses the active transaction, or the pool when none is active.
func (uow *GormUnitOfWork) ProductoRepository() ports.ProductoRepository {
	return productorepo.NewGormProductoRepository(uow.conn(), uow)
}

// UbicacionRepository uses the active transaction, or the pool when none is active.
func (uow *GormUnitOfWork) UbicacionRepository() ports.UbicacionRepository {
	return ubicacionrepo.NewGormUbicacionRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) eventSources() []eventSource {
	sources := make([]eventSource, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		if s, ok := tracked.(eventSource); ok {
			sources = append(sources, s)
		}
	}
	return sources
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
}
