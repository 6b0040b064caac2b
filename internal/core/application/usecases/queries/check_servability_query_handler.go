package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"
	"fooddelivery/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckServabilityQueryHandler answers destination servability checks.
//
// Unlike the other read models this handler reconstructs zone aggregates from
// their rows, because containment is domain logic that lives on the zone
// shapes rather than in SQL.
type CheckServabilityQueryHandler struct {
	db        *gorm.DB
	validator services.ZoneValidator
}

// NewCheckServabilityQueryHandler creates a handler for servability checks.
// Requires a GORM database connection for query execution.
func NewCheckServabilityQueryHandler(db *gorm.DB) CheckServabilityQueryHandler {
	return CheckServabilityQueryHandler{
		db:        db,
		validator: services.NewZoneValidator(),
	}
}

// Handle executes the servability check. A restaurant with no configured
// zones serves nothing, so the destination is reported as not servable.
func (h CheckServabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckServabilityQuery,
) (CheckServabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckServabilityQueryResponse{}, err
	}

	zones, err := h.loadZones(ctx, query.RestaurantID())
	if err != nil {
		return CheckServabilityQueryResponse{}, err
	}

	servable, err := h.validator.IsServable(query.Destination(), zones)
	if err != nil {
		return CheckServabilityQueryResponse{}, err
	}

	return CheckServabilityQueryResponse{Servable: servable}, nil
}

func (h CheckServabilityQueryHandler) loadZones(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*zone.Zone, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			kind,
			center_latitude,
			center_longitude,
			radius_meters,
			vertices
		FROM delivery_zones
		WHERE restaurant_id = ?
	`, restaurantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]*zone.Zone, 0)

	for rows.Next() {
		var id, ownerID uuid.UUID
		var name string
		var kind int
		var latitude, longitude, radiusMeters float64
		var rawVertices []byte

		err = rows.Scan(&id, &ownerID, &name, &kind, &latitude, &longitude, &radiusMeters, &rawVertices)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}

		var center kernel.GeoPoint
		if zone.Kind(kind) == zone.KindCircular {
			center, err = kernel.NewGeoPoint(latitude, longitude)
			if err != nil {
				return nil, err
			}
		}

		vertices, vertErr := parseZoneVertices(rawVertices)
		if vertErr != nil {
			return nil, vertErr
		}

		restored, zoneErr := zone.RestoreZone(
			zoneID, restID, name, zone.Kind(kind), center, radiusMeters, vertices)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zones = append(zones, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
