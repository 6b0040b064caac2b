package kernel_test

import (
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates valid point", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7128, -74.0060)

		require.NoError(t, err)
		assert.InDelta(t, 40.7128, point.Latitude(), 1e-9)
		assert.InDelta(t, -74.0060, point.Longitude(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("accepts boundary ordinates", func(t *testing.T) {
		corners := [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MinLatitude, kernel.MaxLongitude},
			{kernel.MaxLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
			{0, 0},
		}

		for _, c := range corners {
			_, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
		}
	})

	t.Run("rejects latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.0001, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(-91, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 180.0001)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(0, -181)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects non-finite ordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(math.NaN(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewGeoPoint(0, math.Inf(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint
		require.Error(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		b, _ := kernel.NewGeoPoint(40.7128, -74.0060)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		b, _ := kernel.NewGeoPoint(40.7128, -74.0061)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(51.5074, -0.1278)

		distance, err := point.DistanceTo(point)
		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		b, _ := kernel.NewGeoPoint(34.0522, -118.2437)

		ab, err := a.DistanceTo(b)
		require.NoError(t, err)
		ba, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-6)
	})

	t.Run("one degree hundredth of latitude is about a kilometer", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(40.0000, -74.0000)
		b, _ := kernel.NewGeoPoint(40.0090, -74.0000)

		distance, err := a.DistanceTo(b)
		require.NoError(t, err)
		assert.InDelta(t, 1000, distance, 10)
	})

	t.Run("antipodes are half the circumference apart", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(0, 180)

		distance, err := a.DistanceTo(b)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusMeters, distance, 1)
	})

	t.Run("antipodes off the axes stay finite", func(t *testing.T) {
		// Near-antipodal pairs can push the haversine intermediate just
		// above 1, where an unclamped sqrt(1-a) returns NaN.
		halfCircumference := math.Pi * kernel.EarthRadiusMeters

		for lat := -89.96; lat < 90; lat += 7.13 {
			for lng := -179.51; lng < 180; lng += 11.37 {
				a, err := kernel.NewGeoPoint(lat, lng)
				require.NoError(t, err)

				antipodeLng := lng + 180
				if antipodeLng > 180 {
					antipodeLng -= 360
				}
				b, err := kernel.NewGeoPoint(-lat, antipodeLng)
				require.NoError(t, err)

				distance, err := a.DistanceTo(b)
				require.NoError(t, err)
				require.Falsef(t, math.IsNaN(distance), "NaN distance for (%v,%v)", lat, lng)
				assert.InDelta(t, halfCircumference, distance, 1)
			}
		}
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		var b kernel.GeoPoint

		_, err := a.DistanceTo(b)
		require.Error(t, err)
	})
}
