package kernel

import (
	"math"

	"farmadelivery/internal/pkg/errs"
	"farmadelivery/internal/pkg/guard"
)

const earthRadiusKm = 6371.0

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitud", lat, -90, 90)
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitud", lng, -180, 180)
	}
	return GeoPoint{lat: lat, lng: lng, guard: guard.NewConstructorGuard()}, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Lat() float64 {
	return p.lat
}

func (p GeoPoint) Lng() float64 {
	return p.lng
}

// DistanceKm is the haversine great-circle distance in kilometres.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	lat1, lng1 := radians(p.lat), radians(p.lng)
	lat2, lng2 := radians(other.lat), radians(other.lng)

	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * math.Asin(math.Sqrt(a)) * earthRadiusKm, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
