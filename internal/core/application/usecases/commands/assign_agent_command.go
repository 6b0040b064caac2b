package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand triggers the assignment of an available delivery agent
// to the oldest pending order. The assignment retry job issues this command
// every second so orders left Pending by a failed initial dispatch are picked
// up as soon as an agent frees up or moves into range.
//
// Example:
//
//	cmd := NewAssignAgentCommand()
//	handler := NewAssignAgentCommandHandler(uowFactory, dispatcher, notifier, logger)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available agents: %v", err)
//	}
type AssignAgentCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a new command to trigger agent assignment.
// This is a parameterless command that initiates the agent-order matching process.
func NewAssignAgentCommand() AssignAgentCommand {
	return AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c *AssignAgentCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignAgentCommandIsNotConstructed,
	)
}
