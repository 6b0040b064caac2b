package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// CreateRestaurantCommand represents a request to register a new restaurant
// with its kitchen location. Delivery zones are attached separately.
//
// Example:
//
//	restaurantID := kernel.NewUUID()
//	location, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	cmd, err := NewCreateRestaurantCommand(restaurantID, "Luigi's Trattoria", "12 Mulberry St", location)
//	if err != nil {
//	    return fmt.Errorf("invalid restaurant data: %w", err)
//	}
//
//	handler := NewCreateRestaurantCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create restaurant: %w", err)
//	}
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	address      string
	location     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a new restaurant.
// Validates that the restaurant ID and location are valid and the name is not
// empty. The address is optional.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant's street address. May be empty.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Location returns the kitchen's geographic position.
func (c CreateRestaurantCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
