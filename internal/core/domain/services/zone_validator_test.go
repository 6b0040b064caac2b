package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"
	"fooddelivery/internal/core/domain/services"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func newCircularZone(t *testing.T, lat, lng, radiusMeters float64) *zone.Zone {
	t.Helper()
	center := mustGeoPoint(t, lat, lng)
	created, err := zone.NewCircularZone(kernel.NewUUID(), kernel.NewUUID(), "test zone", center, radiusMeters)
	require.NoError(t, err)
	return created
}

func newPolygonZone(t *testing.T, coords [][2]float64) *zone.Zone {
	t.Helper()
	vertices := make([]kernel.GeoPoint, 0, len(coords))
	for _, c := range coords {
		vertices = append(vertices, mustGeoPoint(t, c[0], c[1]))
	}
	created, err := zone.NewPolygonZone(kernel.NewUUID(), kernel.NewUUID(), "test polygon", vertices)
	require.NoError(t, err)
	return created
}

func TestZoneValidator_IsServable(t *testing.T) {
	validator := services.NewZoneValidator()

	t.Run("rejects every destination when no zones are configured", func(t *testing.T) {
		destination := mustGeoPoint(t, 40.7128, -74.0060)

		servable, err := validator.IsServable(destination, nil)

		require.NoError(t, err)
		assert.False(t, servable)

		servable, err = validator.IsServable(destination, []*zone.Zone{})
		require.NoError(t, err)
		assert.False(t, servable)
	})

	t.Run("accepts destination inside a circular zone", func(t *testing.T) {
		z := newCircularZone(t, 40.0, -74.0, 5000)
		destination := mustGeoPoint(t, 40.009, -74.0) // roughly 1 km north

		servable, err := validator.IsServable(destination, []*zone.Zone{z})

		require.NoError(t, err)
		assert.True(t, servable)
	})

	t.Run("rejects destination outside all zones", func(t *testing.T) {
		circular := newCircularZone(t, 40.0, -74.0, 5000)
		polygon := newPolygonZone(t, [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
		destination := mustGeoPoint(t, 50.0, -74.0)

		servable, err := validator.IsServable(destination, []*zone.Zone{circular, polygon})

		require.NoError(t, err)
		assert.False(t, servable)
	})

	t.Run("accepts destination covered by any zone of the set", func(t *testing.T) {
		farCircle := newCircularZone(t, 10.0, 10.0, 1000)
		unitSquare := newPolygonZone(t, [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
		destination := mustGeoPoint(t, 0.5, 0.5)

		servable, err := validator.IsServable(destination, []*zone.Zone{farCircle, unitSquare})

		require.NoError(t, err)
		assert.True(t, servable)
	})

	t.Run("zones do not interact beyond union", func(t *testing.T) {
		// Overlapping zones: a point inside both is still simply servable.
		first := newCircularZone(t, 40.0, -74.0, 5000)
		second := newCircularZone(t, 40.0, -74.0, 8000)
		destination := mustGeoPoint(t, 40.009, -74.0)

		servable, err := validator.IsServable(destination, []*zone.Zone{first, second})

		require.NoError(t, err)
		assert.True(t, servable)
	})

	t.Run("rejects invalid destination", func(t *testing.T) {
		z := newCircularZone(t, 40.0, -74.0, 5000)

		servable, err := validator.IsServable(kernel.GeoPoint{}, []*zone.Zone{z})

		require.Error(t, err)
		assert.False(t, servable)
	})

	t.Run("rejects zone set containing an invalid zone", func(t *testing.T) {
		destination := mustGeoPoint(t, 40.0, -74.0)
		var zero zone.Zone

		servable, err := validator.IsServable(destination, []*zone.Zone{&zero})

		require.Error(t, err)
		assert.False(t, servable)
	})
}
