package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler handles the business logic for delivery agent
// registration. New agents enter the available pool immediately.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent creation operations.
// Requires an AgentUoWFactory for transactional persistence.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent creation command.
// Uses a transaction to ensure the agent is properly persisted or rolled back
// on error.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := agent.NewDeliveryAgent(cmd.AgentID(), cmd.Name(), cmd.Phone(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
