// Package repartidor holds the courier side state that is not part of an
// order: the last position a courier reported.
package repartidor

import (
	"errors"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
)

var ErrUbicacionIsNotConstructed = errors.New("Ubicacion must be created via NewUbicacion constructor")

// Ubicacion is the last reported position of a courier. A new report
// replaces the previous one.
type Ubicacion struct {
	courierID kernel.ID
	punto     kernel.GeoPoint
	updatedAt time.Time

	isConstructed bool
}

func NewUbicacion(courierID kernel.ID, punto kernel.GeoPoint, at time.Time) (*Ubicacion, error) {
	if err := errors.Join(courierID.Validate(), punto.Validate()); err != nil {
		return nil, err
	}

	return &Ubicacion{
		courierID:     courierID,
		punto:         punto,
		updatedAt:     at,
		isConstructed: true,
	}, nil
}

func (u *Ubicacion) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUbicacionIsNotConstructed
	}
	return nil
}

func (u *Ubicacion) CourierID() kernel.ID   { return u.courierID }
func (u *Ubicacion) Punto() kernel.GeoPoint { return u.punto }
func (u *Ubicacion) UpdatedAt() time.Time   { return u.updatedAt }
