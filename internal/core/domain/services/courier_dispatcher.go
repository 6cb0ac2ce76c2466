package services

import (
	"errors"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

// ErrCourierHasActiveOrder is returned when a courier tries to accept a
// pedido while still delivering another one.
var ErrCourierHasActiveOrder = errors.New("courier already has an active pedido")

// CourierDispatcher applies the courier side rules:
//   - a courier delivers at most one pedido at a time
//   - the distance to a pharmacy is known only when both positions are
//
// Example usage:
//
//	dispatcher := NewCourierDispatcher()
//	err := dispatcher.Accept(p, courierID, activos, time.Now())
//	if errors.Is(err, ErrCourierHasActiveOrder) {
//	    // deliver the current one first
//	}
type CourierDispatcher struct{}

func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Accept assigns p to the courier. active must hold every pedido the
// courier is currently delivering.
func (d CourierDispatcher) Accept(p *pedido.Pedido, courierID kernel.ID, active []*pedido.Pedido, at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	for _, a := range active {
		if err := a.Validate(); err != nil {
			return err
		}
		if a.IsActiveFor(courierID) && !a.IsEqual(p) {
			return ErrCourierHasActiveOrder
		}
	}

	return p.Accept(courierID, at)
}

// Distance returns the kilometres between the courier and a pharmacy.
// ok is false when either position is unknown.
func (d CourierDispatcher) Distance(courierAt, farmaciaAt *kernel.GeoPoint) (km float64, ok bool) {
	if courierAt == nil || farmaciaAt == nil {
		return 0, false
	}

	km, err := courierAt.DistanceKm(*farmaciaAt)
	if err != nil {
		return 0, false
	}
	return km, true
}
