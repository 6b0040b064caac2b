package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via a NewCircularZoneCommand or NewPolygonZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errors.New("zone name is required")
	ErrRadiusIsInvalid    = errors.New("radius must be greater than 0")
	ErrNotEnoughVertices  = errors.New("polygon must have at least 3 vertices")
)

// CreateZoneCommand represents a request to attach a delivery zone to a
// restaurant. The zone is either circular (center + radius) or polygonal
// (vertex list); the shape is fixed by the constructor used.
//
// Example:
//
//	center, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	cmd, err := NewCircularZoneCommand(zoneID, restaurantID, "downtown", center, 5000)
//	if err != nil {
//	    return fmt.Errorf("invalid zone data: %w", err)
//	}
//
//	handler := NewCreateZoneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create zone: %w", err)
//	}
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	kind         zone.Kind
	center       kernel.GeoPoint
	radiusMeters float64
	vertices     []kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCircularZoneCommand creates a command to attach a circular delivery zone.
// Validates identifiers, name, center coordinates, and that the radius is positive.
func NewCircularZoneCommand(
	zoneID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	center kernel.GeoPoint,
	radiusMeters float64,
) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		kind:  zone.KindCircular,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setCenter(center),
		cmd.setRadiusMeters(radiusMeters),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

// NewPolygonZoneCommand creates a command to attach a polygonal delivery zone.
// Validates identifiers, name, every vertex, and that at least 3 vertices are
// provided. The vertex slice is copied.
func NewPolygonZoneCommand(
	zoneID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	vertices []kernel.GeoPoint,
) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		kind:  zone.KindPolygon,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setVertices(vertices),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// RestaurantID returns the identifier of the owning restaurant.
func (c CreateZoneCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the zone's display name.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Kind returns the zone shape discriminator.
func (c CreateZoneCommand) Kind() zone.Kind {
	return c.kind
}

// Center returns the circle center. Only meaningful for circular zones.
func (c CreateZoneCommand) Center() kernel.GeoPoint {
	return c.center
}

// RadiusMeters returns the circle radius in meters. Only meaningful for circular zones.
func (c CreateZoneCommand) RadiusMeters() float64 {
	return c.radiusMeters
}

// Vertices returns a copy of the polygon boundary. Only meaningful for polygon zones.
func (c CreateZoneCommand) Vertices() []kernel.GeoPoint {
	vertices := make([]kernel.GeoPoint, len(c.vertices))
	copy(vertices, c.vertices)
	return vertices
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}

	c.center = center
	return nil
}

func (c *CreateZoneCommand) setRadiusMeters(radiusMeters float64) error {
	if radiusMeters <= 0 {
		return ErrRadiusIsInvalid
	}

	c.radiusMeters = radiusMeters
	return nil
}

func (c *CreateZoneCommand) setVertices(vertices []kernel.GeoPoint) error {
	if len(vertices) < 3 {
		return ErrNotEnoughVertices
	}

	for _, vertex := range vertices {
		if err := vertex.Validate(); err != nil {
			return err
		}
	}

	c.vertices = make([]kernel.GeoPoint, len(vertices))
	copy(c.vertices, vertices)
	return nil
}
