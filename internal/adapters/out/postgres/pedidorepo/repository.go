package pedidorepo

import (
	"context"
	"errors"
	"fmt"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPedidoRepository implements ports.PedidoRepository using GORM.
type GormPedidoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects saved aggregates so the unit of work can
// store their domain events on commit.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormPedidoRepository(db *gorm.DB, tracker aggregateTracker) *GormPedidoRepository {
	return &GormPedidoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the pedido and its lines.
func (r *GormPedidoRepository) Add(ctx context.Context, aggregate *pedido.Pedido) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the pedido row guarded by its version. Lines never change
// after creation and are left untouched.
func (r *GormPedidoRepository) Update(ctx context.Context, aggregate *pedido.Pedido) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&PedidoDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit(clause.Associations, "id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.updateConflict(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormPedidoRepository) updateConflict(ctx context.Context, aggregate *pedido.Pedido) error {
	var versions []int
	err := r.db.WithContext(ctx).
		Model(&PedidoDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Pluck("version", &versions).Error
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		return errs.NewObjectNotFoundError("pedido", aggregate.ID().Int64())
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		"pedido",
		fmt.Errorf("expected %d, found %d", aggregate.Version(), versions[0]),
	)
}

// Get loads a pedido with its lines.
func (r *GormPedidoRepository) Get(ctx context.Context, id kernel.ID) (*pedido.Pedido, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PedidoDTO
	err := r.db.WithContext(ctx).
		Preload("Lineas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pedido", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveForCourier returns the EnCamino pedidos assigned to the courier.
// It first takes a transaction-scoped advisory lock on the courier id, so a
// second transaction asking for the same courier waits until the first one
// commits or rolls back and then sees its assignment.
func (r *GormPedidoRepository) GetActiveForCourier(ctx context.Context, courierID kernel.ID) ([]*pedido.Pedido, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", courierID.Int64()).Error; err != nil {
		return nil, fmt.Errorf("lock courier %s: %w", courierID, err)
	}

	var dtos []PedidoDTO
	err := r.db.WithContext(ctx).
		Preload("Lineas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("status = ? AND courier_id = ?", pedido.EnCamino.String(), courierID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pedidos := make([]*pedido.Pedido, 0, len(dtos))
	for _, dto := range dtos {
		p, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		pedidos = append(pedidos, p)
	}

	return pedidos, nil
}
