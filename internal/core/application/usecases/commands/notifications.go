package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// newOrderSummary builds the notification payload for an assignment from the
// order aggregate and the owning restaurant's name.
func newOrderSummary(ord *order.Order, restaurantName string) ports.OrderSummary {
	return ports.OrderSummary{
		OrderID:         ord.ID(),
		RestaurantName:  restaurantName,
		CustomerName:    ord.CustomerName(),
		DeliveryAddress: ord.DeliveryAddress(),
		TotalAmount:     ord.TotalAmount(),
		CreatedAt:       ord.CreatedAt(),
	}
}

// notifyAgentAssigned sends the assignment notification after the transaction
// has committed. Delivery is best-effort: failures are logged and never
// propagated, since the assignment itself is already durable.
func notifyAgentAssigned(
	ctx context.Context,
	logger *slog.Logger,
	sink ports.NotificationSink,
	agentID kernel.UUID,
	summary ports.OrderSummary,
) {
	if sink == nil {
		return
	}

	if err := sink.NotifyAgentAssigned(ctx, agentID, summary); err != nil {
		logger.ErrorContext(ctx, "Failed to notify agent about assignment",
			"agentId", agentID.String(),
			"orderId", summary.OrderID.String(),
			"error", err,
		)
	}
}
