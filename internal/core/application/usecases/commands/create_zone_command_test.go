package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/zone"
	"fooddelivery/internal/pkg/errs"
)

func unitSquare(t *testing.T) []kernel.GeoPoint {
	t.Helper()
	return []kernel.GeoPoint{
		mustGeoPoint(t, 0, 0),
		mustGeoPoint(t, 0, 1),
		mustGeoPoint(t, 1, 1),
		mustGeoPoint(t, 1, 0),
	}
}

func TestNewCircularZoneCommand(t *testing.T) {
	center, _ := kernel.NewGeoPoint(40.7128, -74.0060)

	t.Run("creates circular command", func(t *testing.T) {
		cmd, err := commands.NewCircularZoneCommand(kernel.NewUUID(), kernel.NewUUID(), "downtown", center, 5000)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, zone.KindCircular, cmd.Kind())
		assert.InEpsilon(t, 5000.0, cmd.RadiusMeters(), 1e-9)
	})

	t.Run("rejects non-positive radius", func(t *testing.T) {
		for _, radius := range []float64{0, -100} {
			_, err := commands.NewCircularZoneCommand(kernel.NewUUID(), kernel.NewUUID(), "downtown", center, radius)

			assert.ErrorIs(t, err, commands.ErrRadiusIsInvalid)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := commands.NewCircularZoneCommand(kernel.NewUUID(), kernel.NewUUID(), "", center, 5000)

		assert.ErrorIs(t, err, commands.ErrZoneNameIsRequired)
	})
}

func TestNewPolygonZoneCommand(t *testing.T) {
	t.Run("creates polygon command and copies vertices", func(t *testing.T) {
		vertices := unitSquare(t)

		cmd, err := commands.NewPolygonZoneCommand(kernel.NewUUID(), kernel.NewUUID(), "old town", vertices)

		require.NoError(t, err)
		assert.Equal(t, zone.KindPolygon, cmd.Kind())

		vertices[0] = mustGeoPoint(t, 80, 80)
		assert.NotEqual(t, vertices[0], cmd.Vertices()[0])
	})

	t.Run("rejects fewer than 3 vertices", func(t *testing.T) {
		_, err := commands.NewPolygonZoneCommand(kernel.NewUUID(), kernel.NewUUID(), "old town", unitSquare(t)[:2])

		assert.ErrorIs(t, err, commands.ErrNotEnoughVertices)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.CreateZoneCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateZoneCommandIsNotConstructed)
	})
}

func TestCreateZoneCommandHandler_Handle(t *testing.T) {
	center, _ := kernel.NewGeoPoint(40.7128, -74.0060)

	newRestaurant := func(t *testing.T, id kernel.UUID) *restaurant.Restaurant {
		t.Helper()
		r, err := restaurant.NewRestaurant(id, "Luigi's Trattoria", "", center)
		require.NoError(t, err)
		return r
	}

	t.Run("persists circular zone for existing restaurant", func(t *testing.T) {
		ctx := t.Context()
		restaurantID := kernel.NewUUID()
		cmd, _ := commands.NewCircularZoneCommand(kernel.NewUUID(), restaurantID, "downtown", center, 5000)

		zoneRepo := new(MockZoneRepository)
		restaurantRepo := new(MockRestaurantRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("RestaurantRepository").Return(restaurantRepo).Once()
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(newRestaurant(t, restaurantID), nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo).Once()
		zoneRepo.On("Add", mock.Anything, mock.AnythingOfType("*zone.Zone")).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil)

		h := commands.NewCreateZoneCommandHandler(StubZoneUoWFactory{UoW: uow})
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		zoneRepo.AssertExpectations(t)
		restaurantRepo.AssertExpectations(t)
	})

	t.Run("fails when restaurant does not exist", func(t *testing.T) {
		ctx := t.Context()
		restaurantID := kernel.NewUUID()
		cmd, _ := commands.NewCircularZoneCommand(kernel.NewUUID(), restaurantID, "downtown", center, 5000)

		restaurantRepo := new(MockRestaurantRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("RestaurantRepository").Return(restaurantRepo).Once()
		restaurantRepo.On("Get", mock.Anything, restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurantID", restaurantID)).Once()
		uow.On("Rollback", mock.Anything).Return(nil)

		h := commands.NewCreateZoneCommandHandler(StubZoneUoWFactory{UoW: uow})
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestDeleteZoneCommandHandler_Handle(t *testing.T) {
	center, _ := kernel.NewGeoPoint(40.7128, -74.0060)

	t.Run("deletes existing zone", func(t *testing.T) {
		ctx := t.Context()
		zoneID := kernel.NewUUID()
		cmd, _ := commands.NewDeleteZoneCommand(zoneID)

		existing, err := zone.NewCircularZone(zoneID, kernel.NewUUID(), "downtown", center, 5000)
		require.NoError(t, err)

		zoneRepo := new(MockZoneRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo)
		zoneRepo.On("Get", mock.Anything, zoneID).Return(existing, nil).Once()
		zoneRepo.On("Delete", mock.Anything, zoneID).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil)

		h := commands.NewDeleteZoneCommandHandler(StubZoneUoWFactory{UoW: uow})

		require.NoError(t, h.Handle(ctx, cmd))
		zoneRepo.AssertExpectations(t)
	})

	t.Run("fails when zone does not exist", func(t *testing.T) {
		ctx := t.Context()
		zoneID := kernel.NewUUID()
		cmd, _ := commands.NewDeleteZoneCommand(zoneID)

		zoneRepo := new(MockZoneRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("ZoneRepository").Return(zoneRepo)
		zoneRepo.On("Get", mock.Anything, zoneID).
			Return(nil, errs.NewObjectNotFoundError("zoneID", zoneID)).Once()
		uow.On("Rollback", mock.Anything).Return(nil)

		h := commands.NewDeleteZoneCommandHandler(StubZoneUoWFactory{UoW: uow})
		err := h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		zoneRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
