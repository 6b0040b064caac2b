package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles externally driven order status
// transitions.
//
// Reaching a terminal status (Delivered or Cancelled) releases the assigned
// agent back into the available pool while the order keeps the agent
// reference for history.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderAgentUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// The domain state machine decides whether the transition is legal; the
// status change and any agent release share one transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	aggregate, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.applyTransition(aggregate, cmd.TargetStatus()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.TargetStatus().IsTerminal() && aggregate.Agent() != nil {
		if err = h.releaseAgent(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *UpdateOrderStatusCommandHandler) applyTransition(aggregate *order.Order, target order.Status) error {
	switch target {
	case order.Accepted:
		return aggregate.Accept()
	case order.InTransit:
		return aggregate.StartTransit()
	case order.Delivered:
		return aggregate.Deliver()
	case order.Cancelled:
		return aggregate.Cancel()
	case order.Unknown, order.Pending, order.Assigned:
		return ErrTargetStatusNotAllowed
	default:
		return fmt.Errorf("unsupported target status: %s", target)
	}
}

// releaseAgent puts the agent that held a finished order back into the
// available pool. A missing agent row is tolerated so stale references never
// block closing an order.
func (h *UpdateOrderStatusCommandHandler) releaseAgent(
	ctx context.Context,
	uow OrderAgentUoW,
	aggregate *order.Order,
) error {
	agentRepo := uow.AgentRepository()

	heldBy, err := agentRepo.Get(ctx, *aggregate.Agent())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = heldBy.MarkAvailable(); err != nil {
		return err
	}

	return agentRepo.Update(ctx, heldBy)
}
