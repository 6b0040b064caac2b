// Package agent contains the DeliveryAgent aggregate.
//
// A delivery agent is a courier with an identity, a current geographic
// location, and a single availability flag. The assignment workflow books an
// agent with MarkBusy when an order is assigned to it and releases the agent
// with MarkAvailable when the order is rejected, delivered, or cancelled.
//
// Availability transitions always happen in the same unit of work as the
// corresponding order status change, so an agent can never hold two active
// orders at once.
package agent
