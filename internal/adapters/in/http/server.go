package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/application/usecases/queries"
	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	createTrackingHandler commands.CreateTrackingCommandHandler
	updateStatusHandler   commands.UpdateStatusCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	modifyOrderHandler    commands.ModifyOrderCommandHandler
	reorderHandler        commands.ReorderCommandHandler

	// Query handlers
	getTrackingHandler      queries.GetTrackingQueryHandler
	getOrderHistoryHandler  queries.GetOrderHistoryQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler

	trackingLimiter *ratelimit.KeyedLimiter
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The limiter throttles the public tracking lookup per client IP.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createTrackingHandler commands.CreateTrackingCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	modifyOrderHandler commands.ModifyOrderCommandHandler,
	reorderHandler commands.ReorderCommandHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	trackingLimiter *ratelimit.KeyedLimiter,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		createTrackingHandler:   createTrackingHandler,
		updateStatusHandler:     updateStatusHandler,
		cancelOrderHandler:      cancelOrderHandler,
		modifyOrderHandler:      modifyOrderHandler,
		reorderHandler:          reorderHandler,
		getTrackingHandler:      getTrackingHandler,
		getOrderHistoryHandler:  getOrderHistoryHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		trackingLimiter:         trackingLimiter,
		logger:                  logger.With("component", "http-server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/history", s.OrderHistory)
	api.GET("/orders/pending", s.PendingOrders)
	api.PUT("/orders/:orderId/status", s.UpdateStatusByOrderID)
	api.POST("/orders/:orderId/reorder", s.Reorder)

	trackingGroup := api.Group("/order-tracking")
	trackingGroup.POST("/create", s.CreateTracking)
	trackingGroup.GET("/:reference", s.GetTracking, s.rateLimitByIP)
	trackingGroup.PUT("/:reference/status", s.UpdateStatusByReference)
	trackingGroup.POST("/:reference/cancel", s.CancelOrder)
	trackingGroup.PUT("/:reference/modify", s.ModifyOrder)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/orders - places a new router order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(details)
	if err != nil {
		return s.writeError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseOf(placed))
}

// OrderHistory handles GET /api/orders/history?email= - lists a customer's
// orders, newest first.
func (s *Server) OrderHistory(ctx echo.Context) error {
	query, err := queries.NewGetOrderHistoryQuery(ctx.QueryParam("email"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}

// PendingOrders handles GET /api/orders/pending - the administrator work
// queue.
func (s *Server) PendingOrders(ctx echo.Context) error {
	pending, err := s.getPendingOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pending)
}

// UpdateStatusByOrderID handles PUT /api/orders/:orderId/status - the
// administrator transition addressed by order identity. Notification goes
// through the asynchronous dispatcher.
func (s *Server) UpdateStatusByOrderID(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := tracking.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusByOrderIDCommand(orderID, newStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponseOf(record))
}

// Reorder handles POST /api/orders/:orderId/reorder - duplicates an order
// for its owner.
func (s *Server) Reorder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req ReorderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReorderCommand(orderID, req.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	duplicate, err := s.reorderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseOf(duplicate))
}

// CreateTracking handles POST /api/order-tracking/create - activates
// tracking for a placed order.
func (s *Server) CreateTracking(ctx echo.Context) error {
	var req CreateTrackingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateTrackingCommand(req.OrderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.createTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, trackingResponseOf(record))
}

// GetTracking handles GET /api/order-tracking/:reference - the rate-limited
// public tracking lookup.
func (s *Server) GetTracking(ctx echo.Context) error {
	reference, err := kernel.ReferenceNumberFromString(ctx.Param("reference"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingQuery(reference)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingViewResponse{
		TrackingResponse: TrackingResponse{
			OrderID:   view.OrderID,
			Reference: view.Reference,
			Status:    view.Status,
			CanModify: view.CanModify,
			CanCancel: view.CanCancel,
			CreatedAt: view.CreatedAt,
			UpdatedAt: view.UpdatedAt,
		},
		RouterID:     view.RouterID,
		Quantity:     view.Quantity,
		SitePostcode: view.SitePostcode,
	})
}

// UpdateStatusByReference handles PUT /api/order-tracking/:reference/status -
// the administrator transition addressed by reference number. Notification is
// sent synchronously before the response.
func (s *Server) UpdateStatusByReference(ctx echo.Context) error {
	reference, err := kernel.ReferenceNumberFromString(ctx.Param("reference"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := tracking.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusByReferenceCommand(reference, newStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponseOf(record))
}

// CancelOrder handles POST /api/order-tracking/:reference/cancel - the
// customer cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	reference, err := kernel.ReferenceNumberFromString(ctx.Param("reference"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(reference)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ModifyOrder handles PUT /api/order-tracking/:reference/modify - the
// customer quantity modification.
func (s *Server) ModifyOrder(ctx echo.Context) error {
	reference, err := kernel.ReferenceNumberFromString(ctx.Param("reference"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req ModifyOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewModifyOrderCommand(reference, req.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.modifyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// rateLimitByIP throttles a route per client IP.
func (s *Server) rateLimitByIP(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !s.trackingLimiter.Allow(ctx.RealIP()) {
			return ctx.JSON(http.StatusTooManyRequests, Error{
				Code:    http.StatusTooManyRequests,
				Message: "Too many tracking requests, slow down",
			})
		}
		return next(ctx)
	}
}

// writeError maps domain error classes to HTTP statuses.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(status, Error{Code: status, Message: "Internal server error"})
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseOrderID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}

func detailsFromRequest(req CreateOrderRequest) (order.Details, error) {
	vlans := order.VlanUnspecified
	if req.Vlans != "" {
		parsed, err := order.ParseVlanType(req.Vlans)
		if err != nil {
			return order.Details{}, err
		}
		vlans = parsed
	}

	site, err := order.NewSite(
		req.Site.Name,
		req.Site.Address,
		req.Site.Postcode,
		req.Site.PrimaryEmail,
		req.Site.SecondaryEmail,
		req.Site.PhoneNumber,
		req.Site.ContactName,
	)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		CustomerID:                  req.CustomerID,
		RouterID:                    req.RouterID,
		PresetID:                    req.PresetID,
		PrimaryOutsideConnections:   req.PrimaryOutsideConnections,
		SecondaryOutsideConnections: req.SecondaryOutsideConnections,
		InsideConnections:           req.InsideConnections,
		Vlans:                       vlans,
		DHCP:                        req.DHCP,
		Site:                        site,
		Quantity:                    req.Quantity,
		PriorityLevel:               req.PriorityLevel,
		AdditionalInformation:       req.AdditionalInformation,
	}, nil
}

func trackingResponseOf(record *tracking.Tracking) TrackingResponse {
	return TrackingResponse{
		OrderID:   record.OrderID(),
		Reference: record.Reference().String(),
		Status:    record.Status().String(),
		CanModify: record.CanModify(),
		CanCancel: record.CanCancel(),
		CreatedAt: record.CreatedAt(),
		UpdatedAt: record.UpdatedAt(),
	}
}
