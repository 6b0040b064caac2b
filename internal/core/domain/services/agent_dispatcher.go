package services

import (
	"errors"
	"math"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/order"
)

// DefaultSearchRadiusMeters is the maximum distance between a delivery
// agent and the order destination for the agent to be considered a match.
const DefaultSearchRadiusMeters = 10_000.0

// ErrAgentNotFound is returned when no suitable delivery agent is available
// for order dispatch. This occurs when either no agents are provided or none
// of the provided agents is available within the search radius of the order
// destination.
var ErrAgentNotFound = errors.New("delivery agent not found")

// AgentDispatcher is a domain service responsible for finding and assigning
// the optimal delivery agent for an order based on proximity to the drop-off
// point.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting the nearest available agent within the search radius
//   - Ensuring the booking and order assignment happen together
//
// Business rules:
//   - Orders must be valid and assignable before dispatch
//   - Only available agents are considered
//   - Agents farther than the search radius from the destination are skipped
//   - Selection minimizes great-circle distance to the destination
//   - Ties keep the first candidate in input order
//
// Example usage:
//
//	dispatcher := NewAgentDispatcher(DefaultSearchRadiusMeters)
//	agents := []*agent.DeliveryAgent{agent1, agent2, agent3}
//
//	assignedAgent, err := dispatcher.Dispatch(order, agents)
//	if errors.Is(err, ErrAgentNotFound) {
//	    // No agent within reach, order stays pending
//	    return
//	}
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Order successfully assigned to assignedAgent
type AgentDispatcher struct {
	searchRadiusMeters float64
}

// NewAgentDispatcher creates a new AgentDispatcher with the given search
// radius in meters. A non-positive radius falls back to
// DefaultSearchRadiusMeters.
func NewAgentDispatcher(searchRadiusMeters float64) AgentDispatcher {
	if searchRadiusMeters <= 0 {
		searchRadiusMeters = DefaultSearchRadiusMeters
	}
	return AgentDispatcher{searchRadiusMeters: searchRadiusMeters}
}

// SearchRadiusMeters returns the configured matching radius.
func (d AgentDispatcher) SearchRadiusMeters() float64 {
	return d.searchRadiusMeters
}

// Dispatch finds the nearest available agent for the order and executes the
// assignment workflow.
//
// Parameters:
//   - ord: The order to be dispatched (must be valid and assignable)
//   - agents: Slice of candidate agents to consider
//
// Returns:
//   - *agent.DeliveryAgent: The agent assigned to the order
//   - error: ErrAgentNotFound if no suitable agent exists, or other
//     validation/assignment errors
//
// Selection algorithm:
//   - Validates the order and each agent
//   - Skips unavailable agents and agents outside the search radius
//   - Selects the agent with minimum distance to the order destination
//   - Books the agent and assigns the order together
func (d AgentDispatcher) Dispatch(ord *order.Order, agents []*agent.DeliveryAgent) (*agent.DeliveryAgent, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	if err := ord.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	bestAgent, err := d.findNearestAgent(ord, agents)
	if err != nil {
		return nil, err
	}

	if err = bestAgent.MarkBusy(); err != nil {
		return nil, err
	}

	if err = ord.Assign(bestAgent.ID()); err != nil {
		return nil, err
	}

	return bestAgent, nil
}

// findNearestAgent searches through the candidates for the closest available
// agent within the search radius.
//
// Selection criteria:
//   - Validates agent construction
//   - Skips agents that are not available
//   - Skips agents whose distance to the destination exceeds the radius
//   - Strict less-than comparison keeps the first candidate on equal distance
func (d AgentDispatcher) findNearestAgent(ord *order.Order, agents []*agent.DeliveryAgent) (*agent.DeliveryAgent, error) {
	var (
		bestAgent    *agent.DeliveryAgent
		bestDistance = math.MaxFloat64
	)

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		if !a.IsAvailable() {
			continue
		}

		distance, err := a.DistanceTo(ord.Destination())
		if err != nil {
			return nil, err
		}

		if distance > d.searchRadiusMeters {
			continue
		}

		if distance < bestDistance {
			bestDistance = distance
			bestAgent = a
		}
	}

	if bestAgent == nil {
		return nil, ErrAgentNotFound
	}

	return bestAgent, nil
}
