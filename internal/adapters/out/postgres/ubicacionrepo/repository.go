package ubicacionrepo

import (
	"context"
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/repartidor"
	"farmadelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUbicacionRepository implements ports.UbicacionRepository using GORM.
// Positions carry no domain events, so nothing is tracked for the outbox.
type GormUbicacionRepository struct {
	db *gorm.DB
}

func NewGormUbicacionRepository(db *gorm.DB) *GormUbicacionRepository {
	return &GormUbicacionRepository{db: db}
}

// Save upserts on the courier id.
func (r *GormUbicacionRepository) Save(ctx context.Context, ubicacion *repartidor.Ubicacion) error {
	if err := ubicacion.Validate(); err != nil {
		return err
	}

	dto := UbicacionDTO{
		CourierID: ubicacion.CourierID().Int64(),
		Lat:       ubicacion.Punto().Lat(),
		Lng:       ubicacion.Punto().Lng(),
		UpdatedAt: ubicacion.UpdatedAt(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "updated_at"}),
		}).
		Create(&dto).Error
}

func (r *GormUbicacionRepository) Get(ctx context.Context, courierID kernel.ID) (*repartidor.Ubicacion, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto UbicacionDTO
	err := r.db.WithContext(ctx).First(&dto, "courier_id = ?", courierID.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ubicacion", courierID.Int64())
		}
		return nil, err
	}

	punto, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}
	return repartidor.NewUbicacion(courierID, punto, dto.UpdatedAt)
}
