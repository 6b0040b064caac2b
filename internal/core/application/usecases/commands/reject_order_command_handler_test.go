package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
)

func newAssignedOrder(
	t *testing.T,
	restaurantID kernel.UUID,
	destination kernel.GeoPoint,
	agentID kernel.UUID,
) *order.Order {
	t.Helper()

	assignedOrder := newPendingOrder(t, restaurantID, destination)
	require.NoError(t, assignedOrder.Assign(agentID))

	return assignedOrder
}

func TestRejectOrderCommandHandler_Handle(t *testing.T) {
	dispatcher := services.NewAgentDispatcher(services.DefaultSearchRadiusMeters)
	destination := mustGeoPoint(t, 40.7128, -74.0060)

	t.Run("reassigns to the nearest other agent", func(t *testing.T) {
		ctx := t.Context()
		restaurantID := kernel.NewUUID()

		rejectingAgent, err := agent.RestoreDeliveryAgent(
			kernel.NewUUID(), "Jordan Reyes", "", mustGeoPoint(t, 40.7180, -74.0010), false)
		require.NoError(t, err)
		replacementAgent, err := agent.NewDeliveryAgent(
			kernel.NewUUID(), "Sam Okafor", "", mustGeoPoint(t, 40.7130, -74.0050))
		require.NoError(t, err)

		rejectedOrder := newAssignedOrder(t, restaurantID, destination, rejectingAgent.ID())
		cmd, err := commands.NewRejectOrderCommand(rejectedOrder.ID())
		require.NoError(t, err)

		restaurantAggregate, err := restaurant.NewRestaurant(
			restaurantID, "Luna Kitchen", "12 Mercer St", destination)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		agentRepo := new(MockAgentRepository)
		restaurantRepo := new(MockRestaurantRepository)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("AgentRepository").Return(agentRepo)
		uow.On("RestaurantRepository").Return(restaurantRepo)

		orderRepo.On("Get", mock.Anything, rejectedOrder.ID()).Return(rejectedOrder, nil).Once()
		agentRepo.On("Get", mock.Anything, rejectingAgent.ID()).Return(rejectingAgent, nil).Once()
		agentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *agent.DeliveryAgent) bool {
			return a.ID().IsEqual(rejectingAgent.ID()) && a.IsAvailable()
		})).Return(nil).Once()
		agentRepo.On("GetAllAvailable", mock.Anything).
			Return([]*agent.DeliveryAgent{rejectingAgent, replacementAgent}, nil).Once()
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Assigned &&
				o.Agent() != nil && o.Agent().IsEqual(replacementAgent.ID())
		})).Return(nil).Once()
		agentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *agent.DeliveryAgent) bool {
			return a.ID().IsEqual(replacementAgent.ID()) && !a.IsAvailable()
		})).Return(nil).Once()
		restaurantRepo.On("Get", mock.Anything, restaurantID).
			Return(restaurantAggregate, nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		notifier := new(MockNotificationSink)
		notifier.On("NotifyAgentAssigned", mock.Anything, replacementAgent.ID(), mock.Anything).
			Return(nil).Once()

		h := commands.NewRejectOrderCommandHandler(
			StubUoWFactory{UoW: uow}, dispatcher, notifier, discardLogger())

		require.NoError(t, h.Handle(ctx, cmd))
		agentRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("returns order to pending when nobody else is in range", func(t *testing.T) {
		ctx := t.Context()

		rejectingAgent, err := agent.RestoreDeliveryAgent(
			kernel.NewUUID(), "Jordan Reyes", "", mustGeoPoint(t, 51.5074, -0.1278), false)
		require.NoError(t, err)

		rejectedOrder := newAssignedOrder(t, kernel.NewUUID(), destination, rejectingAgent.ID())
		cmd, err := commands.NewRejectOrderCommand(rejectedOrder.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		agentRepo := new(MockAgentRepository)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("AgentRepository").Return(agentRepo)

		orderRepo.On("Get", mock.Anything, rejectedOrder.ID()).Return(rejectedOrder, nil).Once()
		agentRepo.On("Get", mock.Anything, rejectingAgent.ID()).Return(rejectingAgent, nil).Once()
		agentRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		// The freed agent is the only candidate but far outside the radius.
		agentRepo.On("GetAllAvailable", mock.Anything).
			Return([]*agent.DeliveryAgent{rejectingAgent}, nil).Once()
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pending && o.Agent() == nil
		})).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		notifier := new(MockNotificationSink)

		h := commands.NewRejectOrderCommandHandler(
			StubUoWFactory{UoW: uow}, dispatcher, notifier, discardLogger())

		require.NoError(t, h.Handle(ctx, cmd))
		notifier.AssertNotCalled(t, "NotifyAgentAssigned",
			mock.Anything, mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("rejecting an unassigned order fails", func(t *testing.T) {
		ctx := t.Context()

		pendingOrder := newPendingOrder(t, kernel.NewUUID(), destination)
		cmd, err := commands.NewRejectOrderCommand(pendingOrder.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("AgentRepository").Return(new(MockAgentRepository))

		h := commands.NewRejectOrderCommandHandler(
			StubUoWFactory{UoW: uow}, dispatcher, nil, discardLogger())

		err = h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrOrderIsNotAssigned)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.RejectOrderCommand

		h := commands.NewRejectOrderCommandHandler(
			StubUoWFactory{UoW: new(MockUoW)}, dispatcher, nil, discardLogger())

		assert.ErrorIs(t, h.Handle(t.Context(), cmd),
			commands.ErrRejectOrderCommandIsNotConstructed)
	})
}
