package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetZonesByRestaurantQueryIsNotConstructed = errors.New(
	"GetZonesByRestaurantQuery must be created via NewGetZonesByRestaurantQuery constructor",
)

// GetZonesByRestaurantQuery retrieves the delivery zones configured for one
// restaurant.
//
// Example:
//
//	query, err := NewGetZonesByRestaurantQuery(restaurantID)
//	if err != nil {
//	    return err
//	}
//
//	zones, err := handler.Handle(ctx, query)
type GetZonesByRestaurantQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetZonesByRestaurantQuery creates a query for a restaurant's zones.
func NewGetZonesByRestaurantQuery(restaurantID kernel.UUID) (GetZonesByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetZonesByRestaurantQuery{}, err
	}

	return GetZonesByRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetZonesByRestaurantQueryIsNotConstructed if validation fails.
func (q GetZonesByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose zones are requested.
func (q GetZonesByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetZonesByRestaurantQueryResponse represents one configured delivery zone.
// Circular zones carry a center and radius; polygon zones carry the ordered
// vertex ring instead.
type GetZonesByRestaurantQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Kind         string
	Center       *kernel.GeoPoint
	RadiusMeters float64
	Vertices     []kernel.GeoPoint
}
