package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundAround_ContainsCircle(t *testing.T) {
	centers := []Point{
		{Latitude: 4.0511, Longitude: 9.7679},
		{Latitude: 60.1699, Longitude: 24.9384},
		{Latitude: -33.8688, Longitude: 151.2093},
	}

	for _, c := range centers {
		bound, ok := BoundAround(c.Latitude, c.Longitude, 25)
		require.True(t, ok)

		// Walk the circle edge. Every point at exactly the radius must be inside the box.
		for i := 0; i < 360; i++ {
			bearing := toRadians(float64(i))
			lat, lng := destination(c.Latitude, c.Longitude, bearing, 25)
			assert.True(t, bound.Contains(Point{Latitude: lat, Longitude: lng}.Orb()),
				"point at bearing %d from %+v escaped the box", i, c)
		}
	}
}

func TestBoundAround_IsTight(t *testing.T) {
	bound, ok := BoundAround(0, 0, 111.195)
	require.True(t, ok)

	assert.InDelta(t, 1.0, bound.Max.Lat(), 1e-3)
	assert.InDelta(t, -1.0, bound.Min.Lat(), 1e-3)
	assert.InDelta(t, 1.0, bound.Max.Lon(), 1e-3)
}

func TestBoundAround_ZeroRadius(t *testing.T) {
	bound, ok := BoundAround(4.0511, 9.7679, 0)
	require.True(t, ok)

	assert.True(t, bound.Contains(Point{Latitude: 4.0511, Longitude: 9.7679}.Orb()))
}

func TestBoundAround_FallsBack(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		lng    float64
		radius float64
	}{
		{name: "reaches north pole", lat: 89.95, lng: 0, radius: 10},
		{name: "reaches south pole", lat: -89.95, lng: 0, radius: 10},
		{name: "crosses antimeridian east", lat: 0, lng: 179.95, radius: 10},
		{name: "crosses antimeridian west", lat: 0, lng: -179.95, radius: 10},
		{name: "hemisphere sized", lat: 0, lng: 0, radius: 12000},
		{name: "nan radius", lat: 0, lng: 0, radius: math.NaN()},
		{name: "invalid center", lat: 91, lng: 0, radius: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := BoundAround(tt.lat, tt.lng, tt.radius)
			assert.False(t, ok)
		})
	}
}

// destination returns the point reached by travelling distanceKm from
// (lat, lng) along the initial bearing on the same sphere as Distance.
func destination(lat, lng, bearing, distanceKm float64) (float64, float64) {
	angular := distanceKm / EarthRadiusKm
	lat1 := toRadians(lat)
	lng1 := toRadians(lng)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lng2 := lng1 + math.Atan2(math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

	return toDegrees(lat2), toDegrees(lng2)
}
