package http

import (
	"net/http"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/allocation"
	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/paging"

	"github.com/labstack/echo/v4"
)

// Server translates HTTP requests into application commands and queries.
// Every route expects the caller identity in the X-Actor-Id and
// X-Actor-Role headers; authorization itself happens in the use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	createReadyOrderHandler   commands.CreateReadyOrderCommandHandler
	dispatchOrdersHandler     commands.DispatchOrdersCommandHandler
	updateOrderLineHandler    commands.UpdateOrderLineCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	deliverOrderHandler       commands.DeliverOrderCommandHandler
	continueBakiOrderHandler  commands.ContinueBakiOrderCommandHandler
	recordPickupHandler       commands.RecordPickupCommandHandler
	recordPackOutHandler      commands.RecordPackOutCommandHandler
	markReturnedHandler       commands.MarkReturnedCommandHandler
	fileCareRequestHandler    commands.FileCareRequestCommandHandler
	resolveCareRequestHandler commands.ResolveCareRequestCommandHandler

	getOrdersHandler             queries.GetOrdersQueryHandler
	getStockLevelsHandler        queries.GetStockLevelsQueryHandler
	getCollectionWorklistHandler queries.GetCollectionWorklistQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createReadyOrderHandler commands.CreateReadyOrderCommandHandler,
	dispatchOrdersHandler commands.DispatchOrdersCommandHandler,
	updateOrderLineHandler commands.UpdateOrderLineCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	continueBakiOrderHandler commands.ContinueBakiOrderCommandHandler,
	recordPickupHandler commands.RecordPickupCommandHandler,
	recordPackOutHandler commands.RecordPackOutCommandHandler,
	markReturnedHandler commands.MarkReturnedCommandHandler,
	fileCareRequestHandler commands.FileCareRequestCommandHandler,
	resolveCareRequestHandler commands.ResolveCareRequestCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getStockLevelsHandler queries.GetStockLevelsQueryHandler,
	getCollectionWorklistHandler queries.GetCollectionWorklistQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		createReadyOrderHandler:      createReadyOrderHandler,
		dispatchOrdersHandler:        dispatchOrdersHandler,
		updateOrderLineHandler:       updateOrderLineHandler,
		cancelOrderHandler:           cancelOrderHandler,
		deliverOrderHandler:          deliverOrderHandler,
		continueBakiOrderHandler:     continueBakiOrderHandler,
		recordPickupHandler:          recordPickupHandler,
		recordPackOutHandler:         recordPackOutHandler,
		markReturnedHandler:          markReturnedHandler,
		fileCareRequestHandler:       fileCareRequestHandler,
		resolveCareRequestHandler:    resolveCareRequestHandler,
		getOrdersHandler:             getOrdersHandler,
		getStockLevelsHandler:        getStockLevelsHandler,
		getCollectionWorklistHandler: getCollectionWorklistHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/ready", s.CreateReadyOrder)
	api.POST("/orders/dispatch", s.DispatchOrders)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:orderId/lines/:productId", s.UpdateOrderLine)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/continue", s.ContinueBakiOrder)

	api.POST("/stock/pickups", s.RecordPickup)
	api.GET("/stock/levels", s.GetStockLevels)

	api.POST("/allocations/pack-out", s.RecordPackOut)
	api.POST("/allocations/return", s.MarkReturned)

	api.POST("/care/requests", s.FileCareRequest)
	api.POST("/care/requests/:ticketId/resolve", s.ResolveCareRequest)
	api.GET("/collections/worklist", s.GetCollectionWorklist)
}

func actorFrom(ctx echo.Context) (commands.Actor, error) {
	id, err := parseUUID("actorId", ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return commands.Actor{}, err
	}

	role, err := commands.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return commands.Actor{}, err
	}

	return commands.NewActor(id, role)
}

func parseUUID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

func parseLineSpecs(raw []lineSpecRequest) ([]commands.LineSpec, error) {
	lines := make([]commands.LineSpec, 0, len(raw))
	for _, line := range raw {
		productID, err := parseUUID("productId", line.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, commands.LineSpec{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}
	return lines, nil
}

// CreateOrder handles POST /api/v1/orders. An agent places a pending
// order for a retailer; pricing is derived from master data.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseUUID("id", req.ID)
	if err != nil {
		return writeError(ctx, err)
	}
	retailerID, err := parseUUID("retailerId", req.RetailerID)
	if err != nil {
		return writeError(ctx, err)
	}
	areaID, err := parseUUID("areaId", req.AreaID)
	if err != nil {
		return writeError(ctx, err)
	}
	dealerID, err := parseUUID("dealerId", req.DealerID)
	if err != nil {
		return writeError(ctx, err)
	}
	agentID, err := parseUUID("agentId", req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}
	lines, err := parseLineSpecs(req.Lines)
	if err != nil {
		return writeError(ctx, err)
	}

	var initialStatus *order.Status
	if req.InitialStatus != nil {
		status, err := order.StatusFromString(*req.InitialStatus)
		if err != nil {
			return writeError(ctx, err)
		}
		initialStatus = &status
	}

	cmd, err := commands.NewCreateOrderCommand(actor, orderID, retailerID, areaID, dealerID, agentID, lines, initialStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateReadyOrder handles POST /api/v1/orders/ready. Delivery staff
// report an on-the-spot sale; the order is created already delivered and
// stock is consumed in the same transaction.
func (s *Server) CreateReadyOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createReadyOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseUUID("id", req.ID)
	if err != nil {
		return writeError(ctx, err)
	}
	retailerID, err := parseUUID("retailerId", req.RetailerID)
	if err != nil {
		return writeError(ctx, err)
	}
	areaID, err := parseUUID("areaId", req.AreaID)
	if err != nil {
		return writeError(ctx, err)
	}
	dealerID, err := parseUUID("dealerId", req.DealerID)
	if err != nil {
		return writeError(ctx, err)
	}
	warehouseID, err := parseUUID("warehouseId", req.WarehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	var agentID *kernel.UUID
	if req.AgentID != nil {
		id, err := parseUUID("agentId", *req.AgentID)
		if err != nil {
			return writeError(ctx, err)
		}
		agentID = &id
	}

	lines, err := parseLineSpecs(req.Lines)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateReadyOrderCommand(
		actor, orderID, retailerID, areaID, dealerID, agentID,
		warehouseID, lines, req.CollectedAmount, req.SoldAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createReadyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DispatchOrders handles POST /api/v1/orders/dispatch. The whole batch is
// assigned to one delivery staff or fails as a unit.
func (s *Server) DispatchOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req dispatchOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := parseUUID("orderIds", raw)
		if err != nil {
			return writeError(ctx, err)
		}
		orderIDs = append(orderIDs, id)
	}

	deliveryStaffID, err := parseUUID("deliveryStaffId", req.DeliveryStaffID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchOrdersCommand(actor, orderIDs, deliveryStaffID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.dispatchOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateOrderLine handles PUT /api/v1/orders/:orderId/lines/:productId.
// Packers adjust quantities at catalog prices; agents must supply the
// negotiated price.
func (s *Server) UpdateOrderLine(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}
	productID, err := parseUUID("productId", ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderLineRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderLineCommand(actor, orderID, productID, req.Quantity, req.AgentPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel. Undelivered
// quantities go back to the named warehouse in the same transaction.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := parseUUID("warehouseId", req.WarehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID, warehouseID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req deliverOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeliverOrderCommand(
		actor, orderID, req.CollectionAmount, req.CollectedAmount, req.DeliveredQuantities)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ContinueBakiOrder handles POST /api/v1/orders/:orderId/continue.
// Records a further payment, and optionally further deliveries, against
// a partially settled order.
func (s *Server) ContinueBakiOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req continueBakiOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewContinueBakiOrderCommand(actor, orderID, req.CollectedDelta, req.DeliveredQuantities)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.continueBakiOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordPickup handles POST /api/v1/stock/pickups. A dealer pickup
// raises warehouse stock and appends an audit event.
func (s *Server) RecordPickup(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req recordPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	dealerID, err := parseUUID("dealerId", req.DealerID)
	if err != nil {
		return writeError(ctx, err)
	}
	warehouseID, err := parseUUID("warehouseId", req.WarehouseID)
	if err != nil {
		return writeError(ctx, err)
	}
	productID, err := parseUUID("productId", req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordPickupCommand(actor, dealerID, warehouseID, productID, req.Quantity, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecordPackOut handles POST /api/v1/allocations/pack-out.
func (s *Server) RecordPackOut(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req recordPackOutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := parseUUID("warehouseId", req.WarehouseID)
	if err != nil {
		return writeError(ctx, err)
	}
	productID, err := parseUUID("productId", req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}
	deliveryStaffID, err := parseUUID("deliveryStaffId", req.DeliveryStaffID)
	if err != nil {
		return writeError(ctx, err)
	}
	dealerID, err := parseUUID("dealerId", req.DealerID)
	if err != nil {
		return writeError(ctx, err)
	}
	day, err := kernel.DayFromString(req.Day)
	if err != nil {
		return writeError(ctx, err)
	}
	mode, err := allocation.ModeFromString(req.Mode)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordPackOutCommand(
		actor, warehouseID, productID, deliveryStaffID, dealerID, day, req.OutQuantity, mode)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordPackOutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkReturned handles POST /api/v1/allocations/return. The unsold
// remainder of a day's allocation goes back to warehouse stock.
func (s *Server) MarkReturned(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req markReturnedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := parseUUID("warehouseId", req.WarehouseID)
	if err != nil {
		return writeError(ctx, err)
	}
	productID, err := parseUUID("productId", req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}
	packerID, err := parseUUID("packerId", req.PackerID)
	if err != nil {
		return writeError(ctx, err)
	}
	day, err := kernel.DayFromString(req.Day)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkReturnedCommand(actor, warehouseID, productID, packerID, day)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markReturnedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FileCareRequest handles POST /api/v1/care/requests.
func (s *Server) FileCareRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req fileCareRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseUUID("orderId", req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}
	deliveryStaffID, err := parseUUID("deliveryStaffId", req.DeliveryStaffID)
	if err != nil {
		return writeError(ctx, err)
	}
	requestType, err := carecase.RequestTypeFromString(req.RequestType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFileCareRequestCommand(actor, orderID, deliveryStaffID, requestType, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.fileCareRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveCareRequest handles POST /api/v1/care/requests/:ticketId/resolve.
// Interest resolutions carry the promised request date; NotInterest may
// name the warehouse that takes the cancel restock.
func (s *Server) ResolveCareRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	ticketID, err := parseUUID("ticketId", ctx.Param("ticketId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req resolveCareRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	resolution, err := carecase.TicketStatusFromString(req.Resolution)
	if err != nil {
		return writeError(ctx, err)
	}

	var requestDate *kernel.Day
	if req.RequestDate != nil {
		day, err := kernel.DayFromString(*req.RequestDate)
		if err != nil {
			return writeError(ctx, err)
		}
		requestDate = &day
	}

	var warehouseID *kernel.UUID
	if req.WarehouseID != nil {
		id, err := parseUUID("warehouseId", *req.WarehouseID)
		if err != nil {
			return writeError(ctx, err)
		}
		warehouseID = &id
	}

	cmd, err := commands.NewResolveCareRequestCommand(actor, ticketID, resolution, req.Reason, requestDate, warehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.resolveCareRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrders handles GET /api/v1/orders with optional status,
// deliveryStaffId and day filters plus page, limit and sort parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	var deliveryStaffID *kernel.UUID
	if raw := ctx.QueryParam("deliveryStaffId"); raw != "" {
		id, err := parseUUID("deliveryStaffId", raw)
		if err != nil {
			return writeError(ctx, err)
		}
		deliveryStaffID = &id
	}

	var day *kernel.Day
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := kernel.DayFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		day = &parsed
	}

	query, err := queries.NewGetOrdersQuery(status, deliveryStaffID, day, pagingFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := orderListResponse{
		Orders: make([]orderViewResponse, len(result.Orders)),
		Meta: pagingMetaResponse{
			Page:      result.Meta.Page,
			Limit:     result.Meta.Limit,
			TotalPage: result.Meta.TotalPage,
			TotalDoc:  result.Meta.TotalDoc,
		},
	}
	for i, view := range result.Orders {
		var staffID *string
		if view.DeliveryStaffID != nil {
			v := view.DeliveryStaffID.String()
			staffID = &v
		}
		response.Orders[i] = orderViewResponse{
			ID:               view.ID.String(),
			BusinessID:       view.BusinessID,
			Status:           view.Status,
			PaymentStatus:    view.PaymentStatus,
			RetailerID:       view.RetailerID.String(),
			DeliveryStaffID:  staffID,
			CollectionAmount: view.CollectionAmount,
			CollectedAmount:  view.CollectedAmount,
			CreatedAt:        view.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStockLevels handles GET /api/v1/stock/levels with an optional
// warehouseId filter.
func (s *Server) GetStockLevels(ctx echo.Context) error {
	var warehouseID *kernel.UUID
	if raw := ctx.QueryParam("warehouseId"); raw != "" {
		id, err := parseUUID("warehouseId", raw)
		if err != nil {
			return writeError(ctx, err)
		}
		warehouseID = &id
	}

	query, err := queries.NewGetStockLevelsQuery(warehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	levels, err := s.getStockLevelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]stockLevelResponse, len(levels))
	for i, level := range levels {
		response[i] = stockLevelResponse{
			WarehouseID: level.WarehouseID.String(),
			ProductID:   level.ProductID.String(),
			Quantity:    level.Quantity,
			Price:       level.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCollectionWorklist handles GET /api/v1/collections/worklist?day=.
// The day defaults to today when omitted.
func (s *Server) GetCollectionWorklist(ctx echo.Context) error {
	day := kernel.DayOf(time.Now())
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := kernel.DayFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		day = parsed
	}

	query, err := queries.NewGetCollectionWorklistQuery(day)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getCollectionWorklistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]worklistEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = worklistEntryResponse{
			OrderID:          entry.OrderID.String(),
			BusinessID:       entry.BusinessID,
			OrderStatus:      entry.OrderStatus,
			RequestType:      entry.RequestType,
			RetailerID:       entry.RetailerID.String(),
			DeliveryStaffID:  entry.DeliveryStaffID.String(),
			CollectionAmount: entry.CollectionAmount,
			CollectedAmount:  entry.CollectedAmount,
			Reason:           entry.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func pagingFrom(ctx echo.Context) paging.Request {
	raw := make(map[string]string, 4)
	for _, key := range []string{"page", "limit", "sort", "search"} {
		if v := ctx.QueryParam(key); v != "" {
			raw[key] = v
		}
	}
	return paging.FromQuery(raw)
}
