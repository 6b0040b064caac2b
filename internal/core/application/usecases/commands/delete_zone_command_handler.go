package commands

import (
	"context"
)

// DeleteZoneCommandHandler handles the business logic for zone removal.
type DeleteZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewDeleteZoneCommandHandler creates a handler for zone removal operations.
func NewDeleteZoneCommandHandler(uowFactory ZoneUoWFactory) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone removal command.
// The zone must exist; removal of a missing zone surfaces the repository's
// not-found error.
func (h *DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
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

	if _, err := uow.ZoneRepository().Get(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	if err := uow.ZoneRepository().Delete(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
