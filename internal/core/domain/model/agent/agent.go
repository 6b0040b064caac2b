package agent

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for delivery agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized DeliveryAgent.
	ErrAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent constructor")
	// ErrAgentIsNotAvailable is returned when attempting to book an agent that is already busy.
	ErrAgentIsNotAvailable = errors.New("delivery agent is not available")
)

// DeliveryAgent represents a delivery person in the system.
// It is an aggregate root that manages agent identity, current location, and
// availability. Availability is the single piece of matching state: an agent
// is available exactly when it holds no active order, and the assignment
// workflow flips the flag inside the same transaction that updates the order.
//
// Business rules:
//   - Agent must have a valid UUID, a non-empty name, and a valid location
//   - A newly created agent is available
//   - MarkBusy is only legal on an available agent
//   - MarkAvailable is unconditional: releasing an agent never fails
//
// Example usage:
//
//	location, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	agent, err := NewDeliveryAgent(kernel.NewUUID(), "Jordan Reyes", "+1-555-0134", location)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Agent is available and ready to take an order
type DeliveryAgent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the human-readable name of the agent
	name string
	// phone is the agent's contact number (optional, not used for matching)
	phone string
	// location is the agent's current position
	location kernel.GeoPoint
	// available reports whether the agent can take a new order
	available bool
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates a new DeliveryAgent with the specified parameters.
// The agent starts available. The phone number is optional metadata and is
// not validated beyond storage.
func NewDeliveryAgent(id kernel.UUID, name string, phone string, location kernel.GeoPoint) (*DeliveryAgent, error) {
	agent := &DeliveryAgent{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setLocation(location),
	); err != nil {
		return nil, err
	}

	agent.phone = phone
	return agent, nil
}

// RestoreDeliveryAgent reconstructs a DeliveryAgent aggregate from persistent
// storage, preserving its availability at the time of persistence. The
// restored agent behaves identically to one created through normal domain
// operations.
func RestoreDeliveryAgent(
	id kernel.UUID,
	name string,
	phone string,
	location kernel.GeoPoint,
	available bool,
) (*DeliveryAgent, error) {
	agent, err := NewDeliveryAgent(id, name, phone, location)
	if err != nil {
		return nil, err
	}

	agent.available = available
	return agent, nil
}

// Validate ensures the DeliveryAgent instance was properly constructed.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *DeliveryAgent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's human-readable name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// Phone returns the agent's contact number. May be empty.
func (a *DeliveryAgent) Phone() string {
	return a.phone
}

// Location returns the agent's current position.
func (a *DeliveryAgent) Location() kernel.GeoPoint {
	return a.location
}

// IsAvailable reports whether the agent can take a new order.
func (a *DeliveryAgent) IsAvailable() bool {
	return a.available
}

// DistanceTo returns the great-circle distance in meters from the agent's
// current location to the given point.
func (a *DeliveryAgent) DistanceTo(point kernel.GeoPoint) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return a.location.DistanceTo(point)
}

// MarkBusy books the agent for an order, making it unavailable.
// Returns ErrAgentIsNotAvailable if the agent is already busy; the assignment
// workflow must only book agents it selected from the available pool.
func (a *DeliveryAgent) MarkBusy() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.available {
		return ErrAgentIsNotAvailable
	}

	a.available = false
	return nil
}

// MarkAvailable releases the agent, making it available for new orders.
// The release is unconditional: freeing an agent that is already available is
// a no-op, which keeps rejection and terminal-status flows simple.
func (a *DeliveryAgent) MarkAvailable() error {
	if err := a.Validate(); err != nil {
		return err
	}

	a.available = true
	return nil
}

// MoveTo updates the agent's current position.
// Location updates arrive from outside the assignment workflow (for example
// a mobile client ping) and do not affect availability.
func (a *DeliveryAgent) MoveTo(location kernel.GeoPoint) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return a.setLocation(location)
}

// setID validates and sets the agent's unique identifier.
// This is a private method used only during construction.
func (a *DeliveryAgent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setName validates and sets the agent's name.
func (a *DeliveryAgent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

// setLocation validates and sets the agent's position.
func (a *DeliveryAgent) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
