package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Identity(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 4.0511, Longitude: 9.7679},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9999, Longitude: -179.9999},
	}

	for _, p := range points {
		assert.InDelta(t, 0, Distance(p.Latitude, p.Longitude, p.Latitude, p.Longitude), 1e-9)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{48.8566, 2.3522, 51.5074, -0.1278},
		{4.0511, 9.7679, 3.8480, 11.5021},
		{-33.8688, 151.2093, 40.7128, -74.0060},
		{0, 179.9, 0, -179.9},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1], p[2], p[3]), Distance(p[2], p[3], p[0], p[1]))
	}
}

func TestDistance_KnownLandmarks(t *testing.T) {
	// Paris to London
	assert.InDelta(t, 343.5, Distance(48.8566, 2.3522, 51.5074, -0.1278), 1.0)

	// One degree of longitude on the equator
	assert.InDelta(t, 111.195, Distance(0, 0, 0, 1), 0.001)
}

func TestDistance_AcrossAntimeridian(t *testing.T) {
	// 0.2 degrees apart on the equator, not 359.8
	assert.InDelta(t, 22.239, Distance(0, 179.9, 0, -179.9), 0.001)
}
