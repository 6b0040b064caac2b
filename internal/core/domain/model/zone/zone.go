package zone

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// minPolygonVertices is the minimum number of vertices a polygon zone must have.
const minPolygonVertices = 3

// Domain errors for zone operations.
var (
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewCircularZone or NewPolygonZone constructor")
	// ErrNameIsRequired is returned when attempting to create a zone without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Kind discriminates the two supported zone shapes.
type Kind int

const (
	// KindUnknown represents an invalid or undefined zone kind.
	KindUnknown Kind = iota

	// KindCircular is a zone defined by a center point and a radius in meters.
	KindCircular

	// KindPolygon is a zone defined by an ordered ring of boundary vertices.
	KindPolygon
)

// String returns the human-readable name of the zone kind.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (k Kind) String() string {
	switch k {
	case KindCircular:
		return "circular"
	case KindPolygon:
		return "polygon"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Validate checks if the Kind value is one of the supported shapes.
func (k Kind) Validate() error {
	if k != KindCircular && k != KindPolygon {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid zone kind", k))
	}
	return nil
}

// Zone represents a georeferenced delivery region owned by a restaurant.
// A restaurant may own any number of zones; a destination is servable when it
// lies inside at least one of them (union semantics).
//
// Zone is a tagged union over two shapes: circular zones carry a center and a
// radius in meters and never carry vertices; polygon zones carry an ordered
// vertex ring and never carry a center or radius. The discriminator is
// enforced by the constructors, so invalid field combinations cannot be
// represented.
type Zone struct {
	// id uniquely identifies the zone
	id kernel.UUID
	// restaurantID is the owning restaurant
	restaurantID kernel.UUID
	// name is the human-readable zone label
	name string
	// kind discriminates the shape fields below
	kind Kind
	// center and radiusMeters are set only for circular zones
	center       kernel.GeoPoint
	radiusMeters float64
	// vertices is set only for polygon zones
	vertices []kernel.GeoPoint
	// guard ensures the zone was properly constructed
	guard guard.ConstructorGuard
}

// NewCircularZone creates a zone defined by a center point and a radius.
// The radius is in meters and must be positive; the center must be a properly
// constructed GeoPoint.
//
// Example:
//
//	center, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	z, err := zone.NewCircularZone(kernel.NewUUID(), restaurantID, "Downtown", center, 5000)
//	if err != nil {
//	    // Handle validation error
//	}
func NewCircularZone(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	center kernel.GeoPoint,
	radiusMeters float64,
) (*Zone, error) {
	z := &Zone{
		kind:  KindCircular,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setRestaurantID(restaurantID),
		z.setName(name),
		z.setCenter(center),
		z.setRadiusMeters(radiusMeters),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// NewPolygonZone creates a zone defined by an ordered ring of boundary vertices.
// At least three properly constructed vertices are required. The vertex slice
// is copied; the caller keeps ownership of its slice.
func NewPolygonZone(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	vertices []kernel.GeoPoint,
) (*Zone, error) {
	z := &Zone{
		kind:  KindPolygon,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setRestaurantID(restaurantID),
		z.setName(name),
		z.setVertices(vertices),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone aggregate from persistent storage.
// Circular zones are re-validated through NewCircularZone; for polygon zones
// center and radiusMeters are ignored. Unlike NewPolygonZone, a stored ring
// with fewer than three vertices is accepted here: such a zone loads and
// reports ContainsPoint as false instead of failing the whole zone set.
func RestoreZone(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	kind Kind,
	center kernel.GeoPoint,
	radiusMeters float64,
	vertices []kernel.GeoPoint,
) (*Zone, error) {
	switch kind {
	case KindCircular:
		return NewCircularZone(id, restaurantID, name, center, radiusMeters)
	case KindPolygon:
		return restorePolygonZone(id, restaurantID, name, vertices)
	case KindUnknown:
		return nil, kind.Validate()
	default:
		return nil, kind.Validate()
	}
}

// restorePolygonZone rebuilds a polygon zone without the minimum-vertex rule
// enforced by NewPolygonZone. Each vertex is still validated individually.
func restorePolygonZone(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	vertices []kernel.GeoPoint,
) (*Zone, error) {
	z := &Zone{
		kind:  KindPolygon,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setRestaurantID(restaurantID),
		z.setName(name),
		z.restoreVertices(vertices),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// Validate ensures the Zone instance was properly constructed through a constructor.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// IsEqual compares two zones by their unique identifiers.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// RestaurantID returns the identifier of the restaurant owning the zone.
func (z *Zone) RestaurantID() kernel.UUID {
	return z.restaurantID
}

// Name returns the human-readable zone label.
func (z *Zone) Name() string {
	return z.name
}

// Kind returns the shape discriminator of the zone.
func (z *Zone) Kind() Kind {
	return z.kind
}

// Center returns the center point of a circular zone.
// For polygon zones the returned point is the zero value.
func (z *Zone) Center() kernel.GeoPoint {
	return z.center
}

// RadiusMeters returns the radius of a circular zone in meters.
// For polygon zones the returned radius is 0.
func (z *Zone) RadiusMeters() float64 {
	return z.radiusMeters
}

// Vertices returns a copy of the boundary ring of a polygon zone.
// For circular zones the returned slice is nil.
func (z *Zone) Vertices() []kernel.GeoPoint {
	if z.vertices == nil {
		return nil
	}
	vertices := make([]kernel.GeoPoint, len(z.vertices))
	copy(vertices, z.vertices)
	return vertices
}

// ContainsPoint reports whether the given point lies inside the zone.
//
// Circular zones contain a point when the great-circle distance from the
// center is less than or equal to the radius; the boundary counts as inside.
//
// Polygon zones are tested with the even-odd ray casting rule, treating
// longitude as the x axis and latitude as the y axis. This planar
// approximation is acceptable at the scale of single-city delivery zones; it
// is not geodesically exact. A degenerate ring with fewer than three vertices
// contains nothing and is not an error.
func (z *Zone) ContainsPoint(p kernel.GeoPoint) (bool, error) {
	if err := errors.Join(z.Validate(), p.Validate()); err != nil {
		return false, err
	}

	switch z.kind {
	case KindCircular:
		distance, err := z.center.DistanceTo(p)
		if err != nil {
			return false, err
		}
		return distance <= z.radiusMeters, nil
	case KindPolygon:
		return z.containsPointInPolygon(p), nil
	case KindUnknown:
		return false, z.kind.Validate()
	default:
		return false, z.kind.Validate()
	}
}

// containsPointInPolygon runs the even-odd ray casting test: a horizontal ray
// from the point toward +x crosses an edge when the edge's y range straddles
// the point's y and the crossing x exceeds the point's x; each crossing
// toggles the inside flag.
func (z *Zone) containsPointInPolygon(p kernel.GeoPoint) bool {
	if len(z.vertices) < minPolygonVertices {
		return false
	}

	x := p.Longitude()
	y := p.Latitude()

	inside := false
	for i, j := 0, len(z.vertices)-1; i < len(z.vertices); j, i = i, i+1 {
		xi, yi := z.vertices[i].Longitude(), z.vertices[i].Latitude()
		xj, yj := z.vertices[j].Longitude(), z.vertices[j].Latitude()

		intersects := ((yi > y) != (yj > y)) &&
			(x < (xj-xi)*(y-yi)/(yj-yi)+xi)
		if intersects {
			inside = !inside
		}
	}

	return inside
}

// setID validates and sets the zone's unique identifier.
// This is a private method used only during construction.
func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

// setRestaurantID validates and sets the owning restaurant's identifier.
func (z *Zone) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	z.restaurantID = restaurantID
	return nil
}

// setName validates and sets the zone's label.
func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

// setCenter validates and sets the circular zone's center point.
func (z *Zone) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}
	z.center = center
	return nil
}

// setRadiusMeters validates and sets the circular zone's radius.
// The radius must be strictly positive.
func (z *Zone) setRadiusMeters(radiusMeters float64) error {
	if radiusMeters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("radiusMeters",
			fmt.Errorf("%f is not greater than 0", radiusMeters))
	}
	z.radiusMeters = radiusMeters
	return nil
}

// setVertices validates and sets the polygon zone's boundary ring.
func (z *Zone) setVertices(vertices []kernel.GeoPoint) error {
	if len(vertices) < minPolygonVertices {
		return errs.NewValueIsInvalidErrorWithCause("vertices",
			fmt.Errorf("polygon requires at least %d vertices, got %d", minPolygonVertices, len(vertices)))
	}

	return z.restoreVertices(vertices)
}

// restoreVertices validates and copies the boundary ring without the
// minimum-vertex rule. Used by the restore path.
func (z *Zone) restoreVertices(vertices []kernel.GeoPoint) error {
	for _, v := range vertices {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	z.vertices = make([]kernel.GeoPoint, len(vertices))
	copy(z.vertices, vertices)
	return nil
}
