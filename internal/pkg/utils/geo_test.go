package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	barcelona := Point{Lat: 41.3851, Lon: 2.1734}
	madrid := Point{Lat: 40.4168, Lon: -3.7038}

	t.Run("known distance Barcelona-Madrid", func(t *testing.T) {
		d := HaversineKm(barcelona, madrid)
		// ~505 km by great circle
		assert.InDelta(t, 505, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, HaversineKm(barcelona, madrid), HaversineKm(madrid, barcelona))
	})

	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineKm(barcelona, barcelona))
	})

	t.Run("antimeridian crossing", func(t *testing.T) {
		a := Point{Lat: 0, Lon: 179.5}
		b := Point{Lat: 0, Lon: -179.5}
		d := HaversineKm(a, b)
		// 1 degree of longitude at the equator, not 359
		assert.InDelta(t, 111.2, d, 1)
	})
}

func TestSphericalCentroid(t *testing.T) {
	t.Run("empty set returns error", func(t *testing.T) {
		_, err := SphericalCentroid(nil)
		assert.ErrorIs(t, err, ErrEmptyPointSet)
	})

	t.Run("single point is its own centroid", func(t *testing.T) {
		c, err := SphericalCentroid([]Point{{Lat: 54.2, Lon: -165.7}})
		require.NoError(t, err)
		assert.InDelta(t, 54.2, c.Lat, 1e-9)
		assert.InDelta(t, -165.7, c.Lon, 1e-9)
	})

	t.Run("midpoint of two equatorial points", func(t *testing.T) {
		c, err := SphericalCentroid([]Point{
			{Lat: 0, Lon: 10},
			{Lat: 0, Lon: 20},
		})
		require.NoError(t, err)
		assert.InDelta(t, 0, c.Lat, 1e-9)
		assert.InDelta(t, 15, c.Lon, 1e-9)
	})

	t.Run("antimeridian safe", func(t *testing.T) {
		c, err := SphericalCentroid([]Point{
			{Lat: 0, Lon: 179},
			{Lat: 0, Lon: -179},
		})
		require.NoError(t, err)
		// Naive lat/lon mean would produce lon=0; the vector mean lands on 180
		assert.InDelta(t, 0, c.Lat, 1e-9)
		assert.InDelta(t, 180, math.Abs(c.Lon), 1e-9)
	})

	t.Run("centroid stays inside the cluster extent", func(t *testing.T) {
		c, err := SphericalCentroid([]Point{
			{Lat: 56.1, Lon: -160.2},
			{Lat: 56.3, Lon: -160.4},
			{Lat: 56.2, Lon: -160.3},
		})
		require.NoError(t, err)
		assert.InDelta(t, 56.2, c.Lat, 0.01)
		assert.InDelta(t, -160.3, c.Lon, 0.01)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		valid    bool
	}{
		{"valid mid-ocean", 54.5, -165.0, true},
		{"boundary north pole", 90, 0, true},
		{"boundary antimeridian", 0, -180, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -91, 0, false},
		{"lon too high", 0, 180.5, false},
		{"lon too low", 0, -181, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}
