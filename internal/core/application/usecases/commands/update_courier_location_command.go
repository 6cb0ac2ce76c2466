package commands

import (
	"errors"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand records where a courier is now.
type UpdateCourierLocationCommand struct {
	courierID kernel.ID
	punto     kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateCourierLocationCommand(courierID kernel.ID, lat, lng float64) (UpdateCourierLocationCommand, error) {
	if err := courierID.Validate(); err != nil {
		return UpdateCourierLocationCommand{}, err
	}
	punto, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return UpdateCourierLocationCommand{
		courierID: courierID,
		punto:     punto,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

func (c UpdateCourierLocationCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c UpdateCourierLocationCommand) Punto() kernel.GeoPoint {
	return c.punto
}
