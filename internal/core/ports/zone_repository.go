package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for delivery zone aggregates.
type ZoneRepository interface {
	// Add persists a new delivery zone aggregate to storage.
	// The zone must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Get retrieves a delivery zone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetByRestaurant retrieves all delivery zones belonging to a restaurant.
	// The returned set forms the restaurant's serviceable area.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*zone.Zone, error)

	// Delete removes a delivery zone by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
