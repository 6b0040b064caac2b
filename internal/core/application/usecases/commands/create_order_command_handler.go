package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ErrDestinationNotServable is returned when the requested drop-off point is
// outside every delivery zone of the restaurant. With no zones configured the
// restaurant serves nothing, so every destination is rejected.
var ErrDestinationNotServable = errors.New("destination is outside the restaurant's delivery zones")

// CreateOrderCommandHandler handles the business logic for order placement.
//
// Placement validates the destination against the restaurant's delivery
// zones, persists the order in Pending status, and immediately tries to
// dispatch the nearest available agent. Finding no agent is a normal outcome
// that leaves the order Pending for the assignment job to retry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher, notifier)
//	cmd, _ := NewCreateOrderCommand(orderID, restaurantID, destination,
//	    "Ada Vance", "", "170 Spring St", 42.50, "")
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDestinationNotServable) {
//	    // Outside the serviceable area
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  services.ZoneValidator
	dispatcher services.AgentDispatcher
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for cross-aggregate transactions; the notifier may be
// nil when assignment notifications are disabled.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.AgentDispatcher,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewZoneValidator(),
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order placement command.
//
// All reads and writes run in one transaction: the zone check, the order
// insert, the candidate lookup (with its row locks), and both assignment
// updates commit or roll back together. The notification goes out only after
// a successful commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	restaurantAggregate, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	zones, err := uow.ZoneRepository().GetByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	servable, err := h.validator.IsServable(cmd.Destination(), zones)
	if err != nil {
		return err
	}
	if !servable {
		return ErrDestinationNotServable
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RestaurantID(),
		cmd.Destination(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.DeliveryAddress(),
		cmd.TotalAmount(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	assignedAgent, err := h.tryDispatch(ctx, uow, newOrder)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if assignedAgent != nil {
		notifyAgentAssigned(ctx, h.logger, h.notifier, assignedAgent.ID(),
			newOrderSummary(newOrder, restaurantAggregate.Name()))
	}

	return nil
}

// tryDispatch attempts the initial assignment inside the placement
// transaction. No candidate within reach is not an error: the order simply
// stays Pending.
func (h *CreateOrderCommandHandler) tryDispatch(
	ctx context.Context,
	uow UoW,
	newOrder *order.Order,
) (*agent.DeliveryAgent, error) {
	agents, err := uow.AgentRepository().GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	assignedAgent, err := h.dispatcher.Dispatch(newOrder, agents)
	if errors.Is(err, services.ErrAgentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.AgentRepository().Update(ctx, assignedAgent); err != nil {
		return nil, err
	}

	return assignedAgent, nil
}
