// Package geo contains the proximity search core: great-circle distance,
// the radius scan that ranks geotagged candidates, and the bounding box used
// to narrow candidate queries.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by every distance in this package.
const EarthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance in kilometers between
// (lat1, lng1) and (lat2, lng2). Inputs are degrees and are not validated.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func toDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
