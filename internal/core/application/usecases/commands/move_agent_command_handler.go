package commands

import (
	"context"
)

// MoveAgentCommandHandler handles delivery agent location updates.
type MoveAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewMoveAgentCommandHandler creates a handler for agent location updates.
func NewMoveAgentCommandHandler(uowFactory AgentUoWFactory) MoveAgentCommandHandler {
	return MoveAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command.
func (h *MoveAgentCommandHandler) Handle(ctx context.Context, cmd MoveAgentCommand) error {
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

	agentRepo := uow.AgentRepository()
	aggregate, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = aggregate.MoveTo(cmd.Location()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
