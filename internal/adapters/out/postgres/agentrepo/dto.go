// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence. This package implements the repository pattern
// for the agent domain aggregate, handling the conversion between domain
// entities and database representations.
package agentrepo

import (
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting delivery agent
// aggregates. The availability flag is indexed because the candidate search
// filters on it every assignment attempt.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Location  GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Available bool        `gorm:"index"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

// GeoPointDTO represents the embedded last-known coordinates within the
// agent table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.DeliveryAgent) AgentDTO {
	return AgentDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Available: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.DeliveryAgent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return agent.RestoreDeliveryAgent(id, dto.Name, dto.Phone, location, dto.Available)
}
