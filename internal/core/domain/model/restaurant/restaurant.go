package restaurant

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a food vendor that owns delivery zones.
// The aggregate carries identity, display name, an optional street address,
// and the kitchen's geographic location. Orders reference a restaurant by id,
// and a destination is servable by the restaurant when it lies inside at
// least one of the restaurant's zones.
type Restaurant struct {
	id       kernel.UUID
	name     string
	address  string
	location kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewRestaurant creates a new Restaurant with the specified parameters.
// The address is optional metadata.
func NewRestaurant(id kernel.UUID, name string, address string, location kernel.GeoPoint) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setLocation(location),
	); err != nil {
		return nil, err
	}

	restaurant.address = address
	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant aggregate from persistent storage.
func RestoreRestaurant(id kernel.UUID, name string, address string, location kernel.GeoPoint) (*Restaurant, error) {
	return NewRestaurant(id, name, address, location)
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's street address. May be empty.
func (r *Restaurant) Address() string {
	return r.address
}

// Location returns the kitchen's geographic position.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
