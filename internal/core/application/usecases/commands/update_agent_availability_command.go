package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateAgentAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateAgentAvailabilityCommand must be created via NewUpdateAgentAvailabilityCommand constructor",
)

// UpdateAgentAvailabilityCommand represents a manual availability toggle for a
// delivery agent, for example when the agent goes on or off shift.
type UpdateAgentAvailabilityCommand struct { //nolint:recvcheck //using for validation
	agentID   kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewUpdateAgentAvailabilityCommand creates a command to toggle an agent's
// availability.
func NewUpdateAgentAvailabilityCommand(agentID kernel.UUID, available bool) (UpdateAgentAvailabilityCommand, error) {
	cmd := UpdateAgentAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentID(agentID); err != nil {
		return UpdateAgentAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgentAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentAvailabilityCommandIsNotConstructed)
}

// AgentID returns the identifier of the agent to update.
func (c UpdateAgentAvailabilityCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Available returns the requested availability state.
func (c UpdateAgentAvailabilityCommand) Available() bool {
	return c.available
}

func (c *UpdateAgentAvailabilityCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
