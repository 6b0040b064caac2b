package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"
)

// ZoneValidator is a domain service that decides whether a delivery
// destination is servable by a set of delivery zones.
//
// A destination is servable when it lies inside at least one zone. Zone
// shapes do not interact: the serviceable area is the plain union of the
// individual zones. An empty zone set serves nothing, so every destination
// is rejected until at least one zone is configured.
type ZoneValidator struct{}

// NewZoneValidator creates a new ZoneValidator instance.
func NewZoneValidator() ZoneValidator {
	return ZoneValidator{}
}

// IsServable reports whether the destination falls inside at least one of
// the given zones.
//
// Parameters:
//   - destination: The drop-off point to check (must be valid)
//   - zones: The zones forming the serviceable area, typically all zones of
//     one restaurant
//
// Returns:
//   - true if the destination is inside at least one zone
//   - false if the zone set is empty or no zone contains the destination
//   - error if the destination or any zone is invalid
//
// Evaluation short-circuits on the first containing zone.
func (v ZoneValidator) IsServable(destination kernel.GeoPoint, zones []*zone.Zone) (bool, error) {
	if err := destination.Validate(); err != nil {
		return false, err
	}

	for _, z := range zones {
		contains, err := z.ContainsPoint(destination)
		if err != nil {
			return false, err
		}
		if contains {
			return true, nil
		}
	}

	return false, nil
}
