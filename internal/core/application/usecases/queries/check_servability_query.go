package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCheckServabilityQueryIsNotConstructed = errors.New(
	"CheckServabilityQuery must be created via NewCheckServabilityQuery constructor",
)

// CheckServabilityQuery asks whether a restaurant can deliver to a
// destination. Lets clients validate an address before placing an order, so
// the rejection happens in the form instead of at checkout.
//
// Example:
//
//	query, err := NewCheckServabilityQuery(restaurantID, destination)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !result.Servable {
//	    // Outside the serviceable area
//	}
type CheckServabilityQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	destination  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCheckServabilityQuery creates a servability check for a destination.
func NewCheckServabilityQuery(
	restaurantID kernel.UUID,
	destination kernel.GeoPoint,
) (CheckServabilityQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return CheckServabilityQuery{}, err
	}
	if err := destination.Validate(); err != nil {
		return CheckServabilityQuery{}, err
	}

	return CheckServabilityQuery{
		restaurantID: restaurantID,
		destination:  destination,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckServabilityQueryIsNotConstructed if validation fails.
func (q CheckServabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckServabilityQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to check against.
func (q CheckServabilityQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Destination returns the drop-off point to check.
func (q CheckServabilityQuery) Destination() kernel.GeoPoint {
	return q.destination
}

// CheckServabilityQueryResponse reports whether the destination falls inside
// any of the restaurant's delivery zones.
type CheckServabilityQueryResponse struct {
	Servable bool
}
