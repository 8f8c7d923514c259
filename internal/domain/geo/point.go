package geo

import (
	"math"

	"rentradar/internal/errors"

	"github.com/paulmach/orb"
)

var (
	// ErrInvalidCoordinate is returned for NaN, infinite or out-of-range coordinates.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRadius is returned for NaN, infinite or negative radii.
	ErrInvalidRadius = errors.New("invalid radius")
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Orb converts the point to orb's [lng, lat] representation.
func (p Point) Orb() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// ValidatePoint checks that the coordinate is finite and within
// latitude [-90, 90] and longitude [-180, 180].
func ValidatePoint(lat, lng float64) error {
	if !isFinite(lat) || !isFinite(lng) {
		return errors.Wrapf(ErrInvalidCoordinate, "non-finite coordinate (%v, %v)", lat, lng)
	}

	if lat < -90 || lat > 90 {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %v out of range", lat)
	}

	if lng < -180 || lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %v out of range", lng)
	}

	return nil
}

// ValidateRadius checks that the radius is finite and non-negative.
func ValidateRadius(radiusKm float64) error {
	if !isFinite(radiusKm) || radiusKm < 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius %v", radiusKm)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
