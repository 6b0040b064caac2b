package queries

import (
	"context"
	"encoding/json"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetZonesByRestaurantQueryHandler retrieves the configured delivery zones of
// a restaurant from the database.
type GetZonesByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetZonesByRestaurantQueryHandler creates a handler for zone listing queries.
// Requires a GORM database connection for query execution.
func NewGetZonesByRestaurantQueryHandler(db *gorm.DB) GetZonesByRestaurantQueryHandler {
	return GetZonesByRestaurantQueryHandler{db: db}
}

// zoneVertex mirrors the jsonb element stored for polygon boundary vertices.
type zoneVertex struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Handle executes the query to retrieve a restaurant's zones sorted by name.
func (h GetZonesByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetZonesByRestaurantQuery,
) ([]GetZonesByRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]GetZonesByRestaurantQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			kind,
			center_latitude,
			center_longitude,
			radius_meters,
			vertices
		FROM delivery_zones
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var zoneResp GetZonesByRestaurantQueryResponse
		var id uuid.UUID
		var kind int
		var latitude, longitude float64
		var rawVertices []byte

		err = rows.Scan(
			&id,
			&zoneResp.Name,
			&kind,
			&latitude,
			&longitude,
			&zoneResp.RadiusMeters,
			&rawVertices,
		)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		zoneResp.ID = zoneID
		zoneResp.Kind = zone.Kind(kind).String()

		if zone.Kind(kind) == zone.KindCircular {
			center, locErr := kernel.NewGeoPoint(latitude, longitude)
			if locErr != nil {
				return nil, locErr
			}
			zoneResp.Center = &center
		}

		vertices, vertErr := parseZoneVertices(rawVertices)
		if vertErr != nil {
			return nil, vertErr
		}
		zoneResp.Vertices = vertices

		zones = append(zones, zoneResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func parseZoneVertices(raw []byte) ([]kernel.GeoPoint, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var dtos []zoneVertex
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	vertices := make([]kernel.GeoPoint, 0, len(dtos))
	for _, v := range dtos {
		point, err := kernel.NewGeoPoint(v.Latitude, v.Longitude)
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, point)
	}

	if len(vertices) == 0 {
		return nil, nil
	}
	return vertices, nil
}
