package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotAssigned is returned when rejecting an order that has no
// agent to decline it.
var ErrOrderIsNotAssigned = errors.New("order is not assigned to an agent")

// RejectOrderCommandHandler handles an assigned agent declining an order.
//
// The rejecting agent is freed unconditionally and a replacement search runs
// in the same transaction. The freed agent stays eligible for the search: if
// it is still the only candidate in range the order is assigned back to it,
// which beats leaving the order unserved. When no candidate is found the
// order returns to Pending with no agent.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.AgentDispatcher
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
func NewRejectOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.AgentDispatcher,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger.With("component", "reject_order_handler"),
	}
}

// Handle processes the order rejection command.
//
// The order must be in Assigned status. Freeing the current agent, searching
// for a replacement, and both resulting updates run in a single transaction.
// A replacement assignment notifies the new agent after commit.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	rejectedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if rejectedOrder.Status() != order.Assigned || rejectedOrder.Agent() == nil {
		return ErrOrderIsNotAssigned
	}

	// Free the rejecting agent first so it re-enters the candidate pool.
	rejectingAgent, err := agentRepo.Get(ctx, *rejectedOrder.Agent())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if rejectingAgent != nil {
		if err = rejectingAgent.MarkAvailable(); err != nil {
			return err
		}
		if err = agentRepo.Update(ctx, rejectingAgent); err != nil {
			return err
		}
	}

	agents, err := agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	replacement, err := h.dispatcher.Dispatch(rejectedOrder, agents)
	if errors.Is(err, services.ErrAgentNotFound) {
		if err = rejectedOrder.Unassign(); err != nil {
			return err
		}
		if err = ordersRepo.Update(ctx, rejectedOrder); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, rejectedOrder); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, replacement); err != nil {
		return err
	}

	restaurantAggregate, err := uow.RestaurantRepository().Get(ctx, rejectedOrder.RestaurantID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAgentAssigned(ctx, h.logger, h.notifier, replacement.ID(),
		newOrderSummary(rejectedOrder, restaurantAggregate.Name()))

	return nil
}
