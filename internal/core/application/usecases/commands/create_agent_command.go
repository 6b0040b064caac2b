package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errors.New("agent name is required")
)

// CreateAgentCommand represents a request to register a new delivery agent
// at a starting location. New agents are available immediately.
//
// Example:
//
//	agentID := kernel.NewUUID()
//	location, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	cmd, err := NewCreateAgentCommand(agentID, "Jordan Reyes", "+1-555-0134", location)
//	if err != nil {
//	    return fmt.Errorf("invalid agent data: %w", err)
//	}
//
//	handler := NewCreateAgentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create agent: %w", err)
//	}
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	name     string
	phone    string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register a new delivery agent.
// Validates that the agent ID and location are valid and the name is not
// empty. The phone number is optional.
func NewCreateAgentCommand(
	agentID kernel.UUID,
	name string,
	phone string,
	location kernel.GeoPoint,
) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the agent.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's human-readable name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's contact number. May be empty.
func (c CreateAgentCommand) Phone() string {
	return c.phone
}

// Location returns the agent's starting position.
func (c CreateAgentCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateAgentCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
