package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	// ErrTargetStatusNotAllowed is returned for target statuses that are not
	// reachable through this command. Assignments go through the dispatch
	// flow, and Pending is only reachable through rejection.
	ErrTargetStatusNotAllowed = errors.New("target status is not allowed")
)

// UpdateOrderStatusCommand represents an externally driven status transition:
// the agent accepting the order, picking it up, delivering it, or the order
// being cancelled.
//
// Allowed targets are Accepted, InTransit, Delivered, and Cancelled. The
// domain state machine still decides whether the transition is legal from the
// order's current status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, targetStatus order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	switch targetStatus {
	case order.Accepted, order.InTransit, order.Delivered, order.Cancelled:
		c.targetStatus = targetStatus
		return nil
	case order.Unknown, order.Pending, order.Assigned:
		return ErrTargetStatusNotAllowed
	default:
		return ErrTargetStatusNotAllowed
	}
}
