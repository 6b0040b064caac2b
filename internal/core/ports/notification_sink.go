package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// OrderSummary carries the order details a delivery agent needs to decide on
// a new assignment. It is a flat snapshot so transports can serialize it
// without reaching back into the domain model.
type OrderSummary struct {
	OrderID         kernel.UUID
	RestaurantName  string
	CustomerName    string
	DeliveryAddress string
	TotalAmount     float64
	CreatedAt       time.Time
}

// NotificationSink delivers assignment notifications to delivery agents.
//
// Notifications are best-effort: they are sent after the assignment
// transaction commits, and a failed send never rolls the assignment back.
type NotificationSink interface {
	// NotifyAgentAssigned informs an agent that an order was assigned to them.
	NotifyAgentAssigned(ctx context.Context, agentID kernel.UUID, summary OrderSummary) error
}
