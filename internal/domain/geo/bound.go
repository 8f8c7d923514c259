package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// boundMarginDeg widens the box slightly so floating point error at the edge
// of the circle never drops a candidate the radius scan would keep.
const boundMarginDeg = 1e-9

// BoundAround returns a latitude/longitude box containing every point within
// radiusKm of the center on the haversine sphere. It returns false when no
// simple box exists: the circle reaches a pole, crosses the antimeridian, or
// the inputs are not usable. Callers should then scan without a box.
func BoundAround(lat, lng, radiusKm float64) (orb.Bound, bool) {
	if ValidatePoint(lat, lng) != nil || ValidateRadius(radiusKm) != nil {
		return orb.Bound{}, false
	}

	angular := radiusKm / EarthRadiusKm
	dLat := toDegrees(angular) + boundMarginDeg

	minLat, maxLat := lat-dLat, lat+dLat
	if minLat <= -90 || maxLat >= 90 {
		return orb.Bound{}, false
	}

	ratio := math.Sin(angular) / math.Cos(toRadians(lat))
	if ratio >= 1 {
		return orb.Bound{}, false
	}

	dLng := toDegrees(math.Asin(ratio)) + boundMarginDeg

	minLng, maxLng := lng-dLng, lng+dLng
	if minLng < -180 || maxLng > 180 {
		return orb.Bound{}, false
	}

	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}, true
}
