// Package zone implements the delivery zone aggregate: a georeferenced region
// owned by a restaurant that defines where it will deliver.
//
// Two shapes are supported as a tagged union: circular zones (center point
// plus radius in meters, tested with the great-circle distance) and polygon
// zones (ordered vertex ring, tested with even-odd ray casting over a planar
// lat/lng approximation). The constructors make invalid field combinations
// unrepresentable: a circular zone never carries vertices and a polygon zone
// never carries a center or radius.
//
// A restaurant owns zero or more zones with union semantics — a destination
// is servable when it lies inside any one of them. That union check lives in
// the services package; this package answers containment for a single zone.
package zone
