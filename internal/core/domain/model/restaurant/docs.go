// Package restaurant contains the Restaurant aggregate.
//
// A restaurant owns delivery zones and receives orders. Zone membership of an
// order destination is decided against the set of zones belonging to the
// order's restaurant.
package restaurant
