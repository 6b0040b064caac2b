// Package order provides domain entities and business logic for order management
// in the delivery system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, restaurant reference,
//     destination, customer name, delivery address, and positive total amount
//   - Order status follows a defined workflow:
//     Pending -> Assigned -> Accepted -> InTransit -> Delivered
//   - Orders can be reassigned while in the Assigned status, and return to
//     Pending when the assigned agent rejects with no replacement available
//   - Cancelled terminates an order from any non-terminal status
//   - Terminal orders keep their agent reference for history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
