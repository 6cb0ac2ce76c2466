package ports

import (
	"context"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/repartidor"
)

// UbicacionRepository keeps one position per courier.
type UbicacionRepository interface {
	// Save inserts the position or replaces the courier's previous one.
	Save(ctx context.Context, ubicacion *repartidor.Ubicacion) error
	// Get returns errs.ErrObjectNotFound when the courier never reported.
	Get(ctx context.Context, courierID kernel.ID) (*repartidor.Ubicacion, error)
}
