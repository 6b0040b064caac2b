package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func TestNewRestaurant(t *testing.T) {
	location := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("creates restaurant with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		created, err := restaurant.NewRestaurant(id, "Luigi's Trattoria", "12 Mulberry St", location)

		require.NoError(t, err)
		assert.True(t, created.ID().IsEqual(id))
		assert.Equal(t, "Luigi's Trattoria", created.Name())
		assert.Equal(t, "12 Mulberry St", created.Address())
		equal, err := created.Location().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("allows empty address", func(t *testing.T) {
		created, err := restaurant.NewRestaurant(kernel.NewUUID(), "Luigi's Trattoria", "", location)

		require.NoError(t, err)
		assert.Empty(t, created.Address())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		created, err := restaurant.NewRestaurant(kernel.NewUUID(), "", "", location)

		assert.ErrorIs(t, err, restaurant.ErrNameIsRequired)
		assert.Nil(t, created)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		created, err := restaurant.NewRestaurant(kernel.UUID{}, "Luigi's Trattoria", "", location)

		assert.Error(t, err)
		assert.Nil(t, created)
	})

	t.Run("rejects zero-value location", func(t *testing.T) {
		created, err := restaurant.NewRestaurant(kernel.NewUUID(), "Luigi's Trattoria", "", kernel.GeoPoint{})

		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
		assert.Nil(t, created)
	})
}

func TestRestoreRestaurant(t *testing.T) {
	t.Run("restores restaurant from stored fields", func(t *testing.T) {
		location := mustGeoPoint(t, 40.7128, -74.0060)
		id := kernel.NewUUID()

		restored, err := restaurant.RestoreRestaurant(id, "Luigi's Trattoria", "12 Mulberry St", location)

		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(id))
	})
}

func TestRestaurantValidate(t *testing.T) {
	t.Run("zero-value restaurant fails validation", func(t *testing.T) {
		var zero restaurant.Restaurant

		assert.ErrorIs(t, zero.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})

	t.Run("nil restaurant fails validation", func(t *testing.T) {
		var nilRestaurant *restaurant.Restaurant

		assert.ErrorIs(t, nilRestaurant.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestRestaurantIsEqual(t *testing.T) {
	location := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("restaurants with the same id are equal", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := restaurant.NewRestaurant(id, "Luigi's Trattoria", "", location)
		require.NoError(t, err)
		second, err := restaurant.NewRestaurant(id, "Sakura Sushi", "", location)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("restaurants with different ids are not equal", func(t *testing.T) {
		first, err := restaurant.NewRestaurant(kernel.NewUUID(), "Luigi's Trattoria", "", location)
		require.NoError(t, err)
		second, err := restaurant.NewRestaurant(kernel.NewUUID(), "Luigi's Trattoria", "", location)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})
}
