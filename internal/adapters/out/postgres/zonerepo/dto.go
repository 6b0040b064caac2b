// Package zonerepo provides data transfer objects and mapping functions for
// delivery zone persistence. Both zone shapes share one table: circular zones
// use the center and radius columns, polygon zones store their vertex ring as
// a jsonb document.
package zonerepo

import (
	"encoding/json"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
type ZoneDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Kind         int
	Center       GeoPointDTO `gorm:"embedded;embeddedPrefix:center_"`
	RadiusMeters float64
	Vertices     []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "delivery_zones"
}

// GeoPointDTO represents the embedded center coordinates within the zone table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// VertexDTO is the jsonb element type for polygon boundary vertices.
type VertexDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// fromDomain converts a zone domain aggregate to its database representation.
// The vertex ring is always marshalled, so circular zones store an empty
// jsonb array rather than NULL.
func fromDomain(aggregate *zone.Zone) (ZoneDTO, error) {
	vertices := make([]VertexDTO, 0, len(aggregate.Vertices()))
	for _, v := range aggregate.Vertices() {
		vertices = append(vertices, VertexDTO{
			Latitude:  v.Latitude(),
			Longitude: v.Longitude(),
		})
	}

	raw, err := json.Marshal(vertices)
	if err != nil {
		return ZoneDTO{}, err
	}

	return ZoneDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Name:         aggregate.Name(),
		Kind:         int(aggregate.Kind()),
		Center: GeoPointDTO{
			Latitude:  aggregate.Center().Latitude(),
			Longitude: aggregate.Center().Longitude(),
		},
		RadiusMeters: aggregate.RadiusMeters(),
		Vertices:     raw,
	}, nil
}

// toDomain converts a database DTO to a zone domain aggregate.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	kind := zone.Kind(dto.Kind)

	var center kernel.GeoPoint
	if kind == zone.KindCircular {
		center, err = kernel.NewGeoPoint(dto.Center.Latitude, dto.Center.Longitude)
		if err != nil {
			return nil, err
		}
	}

	vertices, err := verticesFromJSON(dto.Vertices)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, restaurantID, dto.Name, kind, center, dto.RadiusMeters, vertices)
}

func verticesFromJSON(raw []byte) ([]kernel.GeoPoint, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var dtos []VertexDTO
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

	return vertices, nil
}
