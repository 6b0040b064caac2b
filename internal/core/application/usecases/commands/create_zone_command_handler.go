package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler handles the business logic for attaching a
// delivery zone to a restaurant. The owning restaurant must exist.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone creation operations.
// Requires a ZoneUoWFactory so the restaurant lookup and zone insert share a
// transaction.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command.
// Verifies the owning restaurant exists, builds the zone aggregate for the
// requested shape, and persists it.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
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

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	aggregate, err := h.buildZone(cmd)
	if err != nil {
		return err
	}

	if err = uow.ZoneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *CreateZoneCommandHandler) buildZone(cmd CreateZoneCommand) (*zone.Zone, error) {
	switch cmd.Kind() {
	case zone.KindCircular:
		return zone.NewCircularZone(cmd.ZoneID(), cmd.RestaurantID(), cmd.Name(), cmd.Center(), cmd.RadiusMeters())
	case zone.KindPolygon:
		return zone.NewPolygonZone(cmd.ZoneID(), cmd.RestaurantID(), cmd.Name(), cmd.Vertices())
	default:
		return nil, fmt.Errorf("unsupported zone kind: %s", cmd.Kind())
	}
}
