package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMoveAgentCommandIsNotConstructed = errors.New(
	"MoveAgentCommand must be created via NewMoveAgentCommand constructor",
)

// MoveAgentCommand represents a location update for a delivery agent,
// typically a periodic ping from the agent's mobile client. The new position
// feeds the next nearest-agent search; it does not affect availability.
type MoveAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewMoveAgentCommand creates a command to update an agent's position.
func NewMoveAgentCommand(agentID kernel.UUID, location kernel.GeoPoint) (MoveAgentCommand, error) {
	cmd := MoveAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setLocation(location),
	); err != nil {
		return MoveAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveAgentCommand) Validate() error {
	return c.guard.Validate(ErrMoveAgentCommandIsNotConstructed)
}

// AgentID returns the identifier of the agent to move.
func (c MoveAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Location returns the agent's new position.
func (c MoveAgentCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *MoveAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *MoveAgentCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
