package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerNameIsRequired is returned when attempting to create an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrDeliveryAddressIsRequired is returned when attempting to create an order without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from creation through assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and restaurant identifier
//   - Must have a valid delivery destination
//   - Total amount must be positive
//   - Status transitions follow the Pending/Assigned/Accepted/InTransit
//     workflow, with Cancelled reachable from any non-terminal status
//   - The agent reference is consistent with the status: Pending orders carry
//     none, active orders carry exactly one, terminal orders keep the agent
//     that held them for history
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// restaurantID identifies the restaurant the order was placed with
	restaurantID kernel.UUID

	// agentID is the assigned delivery agent's ID (nil if unassigned)
	agentID *kernel.UUID

	// destination is the delivery drop-off point
	destination kernel.GeoPoint

	// customerName identifies the person receiving the order
	customerName string

	// customerPhone is the customer's contact number (optional)
	customerPhone string

	// deliveryAddress is the human-readable drop-off address
	deliveryAddress string

	// totalAmount is the order total in the restaurant's currency (must be positive)
	totalAmount float64

	// notes carries free-form delivery instructions (optional)
	notes string

	// createdAt records when the order was placed
	createdAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - restaurantID: Identifier of the restaurant the order belongs to
//   - destination: Delivery drop-off point with validated coordinates
//   - customerName: Name of the person receiving the order (required)
//   - customerPhone: Contact number (optional)
//   - deliveryAddress: Human-readable drop-off address (required)
//   - totalAmount: Order total (must be positive)
//   - notes: Free-form delivery instructions (optional)
//
// Example:
//
//	destination, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	order, err := NewOrder(kernel.NewUUID(), restaurantID, destination,
//	    "Ada Vance", "+1-555-0199", "170 Spring St", 42.50, "leave at door")
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the order is created
// with Pending status, no agent assigned, and createdAt set to the current time.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	destination kernel.GeoPoint,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	totalAmount float64,
	notes string,
) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setDestination(destination),
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	order.customerPhone = customerPhone
	order.notes = notes
	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the stored status, agent reference, and creation
// time, and verifies that the agent reference is consistent with the status.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	agentID *kernel.UUID,
	destination kernel.GeoPoint,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	totalAmount float64,
	notes string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, restaurantID, destination, customerName, customerPhone, deliveryAddress, totalAmount, notes)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		agentCopy := *agentID
		order.agentID = &agentCopy
	}

	order.status = status
	order.createdAt = createdAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Destination returns the delivery drop-off point.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// CustomerName returns the name of the person receiving the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's contact number. May be empty.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryAddress returns the human-readable drop-off address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Notes returns the free-form delivery instructions. May be empty.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Agent returns the assigned delivery agent's ID.
// Returns nil if no agent is assigned. For Delivered and Cancelled orders the
// reference is preserved so the delivery history stays attributable.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Assign assigns the order to a delivery agent and updates the status to Assigned.
//
// This method enforces the following business rules:
//   - The agent ID must be valid
//   - The order must be in Pending or Assigned status
//   - Reassignment is allowed (from Assigned to Assigned)
//
// After successful assignment, the order's status becomes Assigned and
// Agent() returns the assigned agent's ID.
func (o *Order) Assign(agentID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	return nil
}

// Unassign removes the agent from an Assigned order, returning it to Pending.
// Used when the assigned agent rejects the order and no replacement could be
// found. The agent reference is cleared so the Pending invariant holds.
func (o *Order) Unassign() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = nil
	return nil
}

// Accept records that the assigned agent confirmed the delivery.
// The order must be in Assigned status.
func (o *Order) Accept() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartTransit records that the agent picked up the order.
// The order must be in Accepted status.
func (o *Order) StartTransit() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered. The order must be in InTransit
// status. Delivered is terminal; the agent reference is kept for history.
func (o *Order) Deliver() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel calls the order off. Allowed from any non-terminal status.
// Cancelled is terminal; if an agent was assigned its reference is kept for
// history, and the caller is responsible for releasing the agent.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRestaurantID validates and sets the restaurant reference.
func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

// setDestination validates and sets the delivery drop-off point.
func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

// setDeliveryAddress validates and sets the drop-off address.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setTotalAmount validates and sets the order total.
// The total must be positive.
func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount is invalid", fmt.Errorf("%v is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
