// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
// Provides methods for storing, retrieving, and querying agent entities
// with their current location and availability.
type AgentRepository interface {
	// Add persists a new delivery agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Update persists changes to an existing delivery agent aggregate.
	// The agent must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Get retrieves a delivery agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error)

	// GetAllAvailable retrieves all agents currently available for assignment.
	//
	// When called inside a transaction the returned rows are locked with
	// SELECT FOR UPDATE until the transaction ends. Two concurrent assignment
	// attempts therefore serialize on the available pool, so the same agent
	// can never be booked for two orders at once.
	GetAllAvailable(ctx context.Context) ([]*agent.DeliveryAgent, error)
}
