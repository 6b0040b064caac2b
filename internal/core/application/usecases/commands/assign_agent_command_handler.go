package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrNoPendingOrderFound signals that no order is waiting for an agent.
	// The retry job treats this as the idle case.
	ErrNoPendingOrderFound = errors.New("no pending order found")
	// ErrNoAvailableAgentFound signals that no agent could serve the pending
	// order, either because all agents are busy or none is within reach.
	ErrNoAvailableAgentFound = errors.New("no available agent found")
)

// AssignAgentCommandHandler orchestrates the agent assignment process.
// Finds the oldest pending order and matches it with the nearest available
// agent. Ensures transactional consistency when updating both the order and
// the agent.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory, dispatcher, notifier, logger)
//	cmd := NewAssignAgentCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailableAgentFound):
//	    log.Println("No agent within reach")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Agent assigned successfully")
//	}
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.AgentDispatcher
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewAssignAgentCommandHandler creates a handler for agent assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignAgentCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.AgentDispatcher,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger.With("component", "assign_agent_handler"),
	}
}

// Handle processes the agent assignment command.
//
// Retrieves the oldest pending order, reads the available agents under row
// locks, and uses AgentDispatcher to select the nearest one. Both entities
// are updated within a single transaction, so a concurrent assignment cannot
// book the same agent. Returns ErrNoPendingOrderFound or
// ErrNoAvailableAgentFound for the two idle outcomes.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, command AssignAgentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	ordersRepo := uow.OrderRepository()

	pendingOrder, err := ordersRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrderFound
	}
	if err != nil {
		return err
	}

	agents, err := agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	assignedAgent, err := h.dispatcher.Dispatch(pendingOrder, agents)
	if errors.Is(err, services.ErrAgentNotFound) {
		return ErrNoAvailableAgentFound
	}
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, assignedAgent); err != nil {
		return err
	}

	restaurantAggregate, err := uow.RestaurantRepository().Get(ctx, pendingOrder.RestaurantID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAgentAssigned(ctx, h.logger, h.notifier, assignedAgent.ID(),
		newOrderSummary(pendingOrder, restaurantAggregate.Name()))

	return nil
}
