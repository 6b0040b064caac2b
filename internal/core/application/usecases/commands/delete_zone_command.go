package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteZoneCommandIsNotConstructed = errors.New(
	"DeleteZoneCommand must be created via NewDeleteZoneCommand constructor",
)

// DeleteZoneCommand represents a request to detach a delivery zone from its
// restaurant. Removing the last zone of a restaurant makes every destination
// unservable for it until a new zone is configured.
type DeleteZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteZoneCommand creates a command to remove a delivery zone.
func NewDeleteZoneCommand(zoneID kernel.UUID) (DeleteZoneCommand, error) {
	cmd := DeleteZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setZoneID(zoneID); err != nil {
		return DeleteZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteZoneCommandIsNotConstructed)
}

// ZoneID returns the identifier of the zone to remove.
func (c DeleteZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *DeleteZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}
