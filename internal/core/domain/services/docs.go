// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ZoneValidator: A domain service that decides whether a destination is
//     servable by a set of delivery zones
//   - AgentDispatcher: A domain service for finding and assigning the nearest
//     available delivery agent to an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
