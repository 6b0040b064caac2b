package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func TestNewGetUncompletedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUncompletedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUncompletedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUncompletedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}

func TestNewGetAllAgentsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllAgentsQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllAgentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllAgentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllAgentsQueryIsNotConstructed)
}

func TestNewGetZonesByRestaurantQuery(t *testing.T) {
	t.Run("valid restaurant id", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		query, err := queries.NewGetZonesByRestaurantQuery(restaurantID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("zero-value restaurant id is rejected", func(t *testing.T) {
		_, err := queries.NewGetZonesByRestaurantQuery(kernel.UUID{})

		assert.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetZonesByRestaurantQuery{}

		assert.ErrorIs(t, query.Validate(), queries.ErrGetZonesByRestaurantQueryIsNotConstructed)
	})
}

func TestNewCheckServabilityQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		destination := mustGeoPoint(t, 40.7128, -74.0060)

		query, err := queries.NewCheckServabilityQuery(restaurantID, destination)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("zero-value destination is rejected", func(t *testing.T) {
		_, err := queries.NewCheckServabilityQuery(kernel.NewUUID(), kernel.GeoPoint{})

		assert.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.CheckServabilityQuery{}

		assert.ErrorIs(t, query.Validate(), queries.ErrCheckServabilityQueryIsNotConstructed)
	})
}
