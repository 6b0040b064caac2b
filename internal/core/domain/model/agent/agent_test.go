package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func TestNewDeliveryAgent(t *testing.T) {
	location := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("creates available agent with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		created, err := agent.NewDeliveryAgent(id, "Jordan Reyes", "+1-555-0134", location)

		require.NoError(t, err)
		assert.True(t, created.ID().IsEqual(id))
		assert.Equal(t, "Jordan Reyes", created.Name())
		assert.Equal(t, "+1-555-0134", created.Phone())
		equal, err := created.Location().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.True(t, created.IsAvailable())
	})

	t.Run("allows empty phone", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)

		require.NoError(t, err)
		assert.Empty(t, created.Phone())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "", "", location)

		assert.ErrorIs(t, err, agent.ErrNameIsRequired)
		assert.Nil(t, created)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.UUID{}, "Jordan Reyes", "", location)

		assert.Error(t, err)
		assert.Nil(t, created)
	})

	t.Run("rejects zero-value location", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", kernel.GeoPoint{})

		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
		assert.Nil(t, created)
	})
}

func TestRestoreDeliveryAgent(t *testing.T) {
	location := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("restores busy agent", func(t *testing.T) {
		id := kernel.NewUUID()

		restored, err := agent.RestoreDeliveryAgent(id, "Jordan Reyes", "+1-555-0134", location, false)

		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(id))
		assert.False(t, restored.IsAvailable())
	})

	t.Run("restores available agent", func(t *testing.T) {
		restored, err := agent.RestoreDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location, true)

		require.NoError(t, err)
		assert.True(t, restored.IsAvailable())
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		restored, err := agent.RestoreDeliveryAgent(kernel.NewUUID(), "", "", location, true)

		assert.ErrorIs(t, err, agent.ErrNameIsRequired)
		assert.Nil(t, restored)
	})
}

func TestDeliveryAgentAvailability(t *testing.T) {
	location := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("marks available agent busy", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)

		err = created.MarkBusy()

		require.NoError(t, err)
		assert.False(t, created.IsAvailable())
	})

	t.Run("rejects booking a busy agent", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)
		require.NoError(t, created.MarkBusy())

		err = created.MarkBusy()

		assert.ErrorIs(t, err, agent.ErrAgentIsNotAvailable)
	})

	t.Run("releases busy agent", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)
		require.NoError(t, created.MarkBusy())

		err = created.MarkAvailable()

		require.NoError(t, err)
		assert.True(t, created.IsAvailable())
	})

	t.Run("releasing an available agent is a no-op", func(t *testing.T) {
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)

		err = created.MarkAvailable()

		require.NoError(t, err)
		assert.True(t, created.IsAvailable())
	})
}

func TestDeliveryAgentMoveTo(t *testing.T) {
	t.Run("updates location", func(t *testing.T) {
		start := mustGeoPoint(t, 40.7128, -74.0060)
		destination := mustGeoPoint(t, 40.7306, -73.9866)
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", start)
		require.NoError(t, err)

		err = created.MoveTo(destination)

		require.NoError(t, err)
		equal, err := created.Location().IsEqual(destination)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("rejects invalid location", func(t *testing.T) {
		start := mustGeoPoint(t, 40.7128, -74.0060)
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", start)
		require.NoError(t, err)

		err = created.MoveTo(kernel.GeoPoint{})

		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestDeliveryAgentDistanceTo(t *testing.T) {
	t.Run("returns haversine distance to a point", func(t *testing.T) {
		start := mustGeoPoint(t, 40.0, -74.0)
		target := mustGeoPoint(t, 40.009, -74.0)
		created, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", start)
		require.NoError(t, err)

		distance, err := created.DistanceTo(target)

		require.NoError(t, err)
		assert.InDelta(t, 1000.0, distance, 10.0)
	})
}

func TestDeliveryAgentValidate(t *testing.T) {
	t.Run("zero-value agent fails validation", func(t *testing.T) {
		var zero agent.DeliveryAgent

		assert.ErrorIs(t, zero.Validate(), agent.ErrAgentIsNotConstructed)
	})

	t.Run("nil agent fails validation", func(t *testing.T) {
		var nilAgent *agent.DeliveryAgent

		assert.ErrorIs(t, nilAgent.Validate(), agent.ErrAgentIsNotConstructed)
	})

	t.Run("operations on zero-value agent fail", func(t *testing.T) {
		var zero agent.DeliveryAgent

		assert.ErrorIs(t, zero.MarkBusy(), agent.ErrAgentIsNotConstructed)
		assert.ErrorIs(t, zero.MarkAvailable(), agent.ErrAgentIsNotConstructed)
	})
}

func TestDeliveryAgentIsEqual(t *testing.T) {
	location := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("agents with the same id are equal", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := agent.NewDeliveryAgent(id, "Jordan Reyes", "", location)
		require.NoError(t, err)
		second, err := agent.NewDeliveryAgent(id, "Sam Okafor", "", location)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("agents with different ids are not equal", func(t *testing.T) {
		first, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)
		second, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("agent is not equal to nil", func(t *testing.T) {
		first, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "", location)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(nil))
	})
}
