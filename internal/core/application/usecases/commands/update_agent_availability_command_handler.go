package commands

import (
	"context"
)

// UpdateAgentAvailabilityCommandHandler handles manual availability toggles.
//
// Toggling is idempotent: requesting the state the agent is already in is a
// successful no-op. Marking an agent unavailable does not touch any order the
// agent currently holds.
type UpdateAgentAvailabilityCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentAvailabilityCommandHandler creates a handler for availability
// toggle operations.
func NewUpdateAgentAvailabilityCommandHandler(uowFactory AgentUoWFactory) UpdateAgentAvailabilityCommandHandler {
	return UpdateAgentAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle command.
func (h *UpdateAgentAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateAgentAvailabilityCommand) error {
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

	if aggregate.IsAvailable() != cmd.Available() {
		if cmd.Available() {
			err = aggregate.MarkAvailable()
		} else {
			err = aggregate.MarkBusy()
		}
		if err != nil {
			return err
		}

		if err = agentRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
