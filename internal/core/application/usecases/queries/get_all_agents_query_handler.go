package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAgentsQueryHandler retrieves all delivery agent information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllAgentsQueryHandler(db)
//	query := NewGetAllAgentsQuery()
//
//	agents, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get agents: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d agents\n", len(agents))
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all delivery agents.
// Returns a slice of agent read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			location_latitude,
			location_longitude,
			available
		FROM delivery_agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agentResp GetAllAgentsQueryResponse
		var id uuid.UUID
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&agentResp.Name,
			&agentResp.Phone,
			&latitude,
			&longitude,
			&agentResp.Available,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agentResp.ID = agentID

		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		agentResp.Location = location

		agents = append(agents, agentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
