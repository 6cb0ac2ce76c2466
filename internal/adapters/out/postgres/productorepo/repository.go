package productorepo

import (
	"context"
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"
	"farmadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductoRepository implements ports.ProductoRepository using GORM.
type GormProductoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormProductoRepository(db *gorm.DB, tracker aggregateTracker) *GormProductoRepository {
	return &GormProductoRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductoRepository) Add(ctx context.Context, aggregate *producto.Producto) error {
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

func (r *GormProductoRepository) Update(ctx context.Context, aggregate *producto.Producto) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductoDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("producto", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormProductoRepository) Get(ctx context.Context, id kernel.ID) (*producto.Producto, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("producto", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
