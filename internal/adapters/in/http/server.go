package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRestaurantHandler        commands.CreateRestaurantCommandHandler
	createZoneHandler              commands.CreateZoneCommandHandler
	deleteZoneHandler              commands.DeleteZoneCommandHandler
	createAgentHandler             commands.CreateAgentCommandHandler
	updateAgentAvailabilityHandler commands.UpdateAgentAvailabilityCommandHandler
	moveAgentHandler               commands.MoveAgentCommandHandler
	createOrderHandler             commands.CreateOrderCommandHandler
	rejectOrderHandler             commands.RejectOrderCommandHandler
	updateOrderStatusHandler       commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getAllAgentsHandler         queries.GetAllAgentsQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getZonesByRestaurantHandler queries.GetZonesByRestaurantQueryHandler
	checkServabilityHandler     queries.CheckServabilityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	createZoneHandler commands.CreateZoneCommandHandler,
	deleteZoneHandler commands.DeleteZoneCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	updateAgentAvailabilityHandler commands.UpdateAgentAvailabilityCommandHandler,
	moveAgentHandler commands.MoveAgentCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getZonesByRestaurantHandler queries.GetZonesByRestaurantQueryHandler,
	checkServabilityHandler queries.CheckServabilityQueryHandler,
) *Server {
	return &Server{
		createRestaurantHandler:        createRestaurantHandler,
		createZoneHandler:              createZoneHandler,
		deleteZoneHandler:              deleteZoneHandler,
		createAgentHandler:             createAgentHandler,
		updateAgentAvailabilityHandler: updateAgentAvailabilityHandler,
		moveAgentHandler:               moveAgentHandler,
		createOrderHandler:             createOrderHandler,
		rejectOrderHandler:             rejectOrderHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		getAllAgentsHandler:            getAllAgentsHandler,
		getUncompletedOrdersHandler:    getUncompletedOrdersHandler,
		getZonesByRestaurantHandler:    getZonesByRestaurantHandler,
		checkServabilityHandler:        checkServabilityHandler,
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func geoPointFromLocation(location servers.Location) (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(location.Latitude, location.Longitude)
}

func locationFromGeoPoint(point kernel.GeoPoint) servers.Location {
	return servers.Location{
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
	}
}

// CreateRestaurant handles POST /api/v1/restaurants - registers a restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var newRestaurant servers.NewRestaurant
	if err := ctx.Bind(&newRestaurant); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	location, err := geoPointFromLocation(newRestaurant.Location)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant location: "+err.Error())
	}

	address := ""
	if newRestaurant.Address != nil {
		address = *newRestaurant.Address
	}

	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), newRestaurant.Name, address, location)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant data: "+err.Error())
	}

	if handleErr := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create restaurant")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetRestaurantDeliveryZones handles GET /api/v1/restaurants/{restaurantId}/delivery-zones.
func (s *Server) GetRestaurantDeliveryZones(ctx echo.Context, restaurantId openapi_types.UUID) error {
	restaurantID, err := kernel.UUIDFromBytes(restaurantId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant id")
	}

	query, err := queries.NewGetZonesByRestaurantQuery(restaurantID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant id: "+err.Error())
	}

	zones, err := s.getZonesByRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve delivery zones")
	}

	response := make([]servers.DeliveryZone, len(zones))
	for i, z := range zones {
		dto := servers.DeliveryZone{
			Id:   z.ID.Bytes(),
			Name: z.Name,
			Kind: servers.DeliveryZoneKind(z.Kind),
		}
		if z.Center != nil {
			center := locationFromGeoPoint(*z.Center)
			dto.Center = &center
			radius := z.RadiusMeters
			dto.RadiusMeters = &radius
		}
		if len(z.Vertices) > 0 {
			vertices := make([]servers.Location, len(z.Vertices))
			for j, vertex := range z.Vertices {
				vertices[j] = locationFromGeoPoint(vertex)
			}
			dto.Vertices = &vertices
		}
		response[i] = dto
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryZone handles POST /api/v1/delivery-zones - attaches a zone to a restaurant.
func (s *Server) CreateDeliveryZone(ctx echo.Context) error {
	var newZone servers.NewDeliveryZone
	if err := ctx.Bind(&newZone); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromBytes(newZone.RestaurantId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant id")
	}

	var cmd commands.CreateZoneCommand
	switch newZone.Kind {
	case servers.NewDeliveryZoneKindCircular:
		if newZone.Center == nil || newZone.RadiusMeters == nil {
			return errorResponse(ctx, http.StatusBadRequest, "Circular zone requires center and radiusMeters")
		}
		center, pointErr := geoPointFromLocation(*newZone.Center)
		if pointErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid zone center: "+pointErr.Error())
		}
		cmd, err = commands.NewCircularZoneCommand(
			kernel.NewUUID(), restaurantID, newZone.Name, center, *newZone.RadiusMeters)
	case servers.NewDeliveryZoneKindPolygon:
		if newZone.Vertices == nil {
			return errorResponse(ctx, http.StatusBadRequest, "Polygon zone requires vertices")
		}
		vertices := make([]kernel.GeoPoint, len(*newZone.Vertices))
		for i, vertex := range *newZone.Vertices {
			point, pointErr := geoPointFromLocation(vertex)
			if pointErr != nil {
				return errorResponse(ctx, http.StatusBadRequest, "Invalid zone vertex: "+pointErr.Error())
			}
			vertices[i] = point
		}
		cmd, err = commands.NewPolygonZoneCommand(kernel.NewUUID(), restaurantID, newZone.Name, vertices)
	default:
		return errorResponse(ctx, http.StatusBadRequest, "Unknown zone kind")
	}
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.createZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create delivery zone")
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteDeliveryZone handles DELETE /api/v1/delivery-zones/{zoneId}.
func (s *Server) DeleteDeliveryZone(ctx echo.Context, zoneId openapi_types.UUID) error {
	zoneID, err := kernel.UUIDFromBytes(zoneId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid zone id")
	}

	cmd, err := commands.NewDeleteZoneCommand(zoneID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid zone id: "+err.Error())
	}

	if handleErr := s.deleteZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Zone not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to delete delivery zone")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateAddress handles POST /api/v1/delivery-zones/validate-address.
func (s *Server) ValidateAddress(ctx echo.Context) error {
	var request servers.AddressValidationRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromBytes(request.RestaurantId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant id")
	}

	destination, err := geoPointFromLocation(request.Destination)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid destination: "+err.Error())
	}

	query, err := queries.NewCheckServabilityQuery(restaurantID, destination)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	result, err := s.checkServabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to validate address")
	}

	return ctx.JSON(http.StatusOK, servers.AddressValidationResult{
		Servable: result.Servable,
	})
}

// GetAgents handles GET /api/v1/agents - retrieves the agent roster.
func (s *Server) GetAgents(ctx echo.Context) error {
	query := queries.NewGetAllAgentsQuery()

	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve agents")
	}

	response := make([]servers.Agent, len(agents))
	for i, agent := range agents {
		dto := servers.Agent{
			Id:        agent.ID.Bytes(),
			Name:      agent.Name,
			Location:  locationFromGeoPoint(agent.Location),
			Available: agent.Available,
		}
		if agent.Phone != "" {
			phone := agent.Phone
			dto.Phone = &phone
		}
		response[i] = dto
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAgent handles POST /api/v1/agents - registers a delivery agent.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var newAgent servers.NewAgent
	if err := ctx.Bind(&newAgent); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	location, err := geoPointFromLocation(newAgent.Location)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent location: "+err.Error())
	}

	phone := ""
	if newAgent.Phone != nil {
		phone = *newAgent.Phone
	}

	cmd, err := commands.NewCreateAgentCommand(kernel.NewUUID(), newAgent.Name, phone, location)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent data: "+err.Error())
	}

	if handleErr := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create agent")
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateAgentAvailability handles POST /api/v1/agents/{agentId}/availability.
func (s *Server) UpdateAgentAvailability(ctx echo.Context, agentId openapi_types.UUID) error {
	var availability servers.AgentAvailability
	if err := ctx.Bind(&availability); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(agentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent id")
	}

	cmd, err := commands.NewUpdateAgentAvailabilityCommand(agentID, availability.Available)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid availability data: "+err.Error())
	}

	if handleErr := s.updateAgentAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Agent not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to update agent availability")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAgentLocation handles POST /api/v1/agents/{agentId}/location.
func (s *Server) UpdateAgentLocation(ctx echo.Context, agentId openapi_types.UUID) error {
	var location servers.Location
	if err := ctx.Bind(&location); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(agentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent id")
	}

	point, err := geoPointFromLocation(location)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid coordinates: "+err.Error())
	}

	cmd, err := commands.NewMoveAgentCommand(agentID, point)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid location data: "+err.Error())
	}

	if handleErr := s.moveAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Agent not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to update agent location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromBytes(newOrder.RestaurantId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant id")
	}

	destination, err := geoPointFromLocation(newOrder.Destination)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid destination: "+err.Error())
	}

	customerPhone := ""
	if newOrder.CustomerPhone != nil {
		customerPhone = *newOrder.CustomerPhone
	}
	notes := ""
	if newOrder.Notes != nil {
		notes = *newOrder.Notes
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		restaurantID,
		destination,
		newOrder.CustomerName,
		customerPhone,
		newOrder.DeliveryAddress,
		newOrder.TotalAmount,
		notes,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrDestinationNotServable):
			return errorResponse(ctx, http.StatusUnprocessableEntity,
				"Destination is outside the restaurant's delivery zones")
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		}
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		dto := servers.Order{
			Id:              o.ID.Bytes(),
			RestaurantId:    o.RestaurantID.Bytes(),
			Destination:     locationFromGeoPoint(o.Destination),
			CustomerName:    o.CustomerName,
			DeliveryAddress: o.DeliveryAddress,
			TotalAmount:     o.TotalAmount,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt,
		}
		if o.AgentID != nil {
			agentID := o.AgentID.Bytes()
			dto.AgentId = &agentID
		}
		response[i] = dto
	}

	return ctx.JSON(http.StatusOK, response)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject - rejects an
// assignment and searches for a replacement agent.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(handleErr, commands.ErrOrderIsNotAssigned):
			return errorResponse(ctx, http.StatusConflict, "Order is not assigned to an agent")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to reject order")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - transitions
// an order to a new status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var statusUpdate servers.OrderStatusUpdate
	if err := ctx.Bind(&statusUpdate); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	targetStatus, err := order.StatusFromString(string(statusUpdate.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid target status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, targetStatus)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status update: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(handleErr, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusConflict,
				"Transition not allowed from the current status")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}
