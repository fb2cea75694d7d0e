package http

import (
	"errors"
	"net/http"
	"strconv"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/core/domain/services"
	"fabrication/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	startOrderHandler   commands.StartOrderCommandHandler
	finishOrderHandler  commands.FinishOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	replaceItemsHandler commands.ReplaceItemsCommandHandler

	// Query handlers
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	finishOrderHandler commands.FinishOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	replaceItemsHandler commands.ReplaceItemsCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		confirmOrderHandler:    confirmOrderHandler,
		startOrderHandler:      startOrderHandler,
		finishOrderHandler:     finishOrderHandler,
		deliverOrderHandler:    deliverOrderHandler,
		replaceItemsHandler:    replaceItemsHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
		getOrderSummaryHandler: getOrderSummaryHandler,
	}
}

// RegisterRoutes wires all order endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/start", s.StartOrder)
	api.POST("/orders/:id/finish", s.FinishOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.PUT("/orders/:id/items", s.ReplaceItems)
	api.DELETE("/orders/:id/items", s.ClearItems)
	api.GET("/orders/:id/summary", s.GetOrderSummary)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new production order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderNumber, req.CustomerID, req.TeamID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrders handles GET /api/v1/orders - retrieves all production orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, row := range orders {
		response[i] = orderFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one production order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	row, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromRow(row))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - schedules the order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id int64) (*order.Order, error) {
		cmd, err := commands.NewConfirmOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartOrder handles POST /api/v1/orders/:id/start - begins manufacturing.
func (s *Server) StartOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id int64) (*order.Order, error) {
		cmd, err := commands.NewStartOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.startOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// FinishOrder handles POST /api/v1/orders/:id/finish - marks manufacturing done.
func (s *Server) FinishOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id int64) (*order.Order, error) {
		cmd, err := commands.NewFinishOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.finishOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver - completes the order.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id int64) (*order.Order, error) {
		cmd, err := commands.NewDeliverOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ReplaceItems handles PUT /api/v1/orders/:id/items - swaps the item set.
func (s *Server) ReplaceItems(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req []ItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specs := make([]commands.ItemSpec, len(req))
	for i, item := range req {
		specs[i] = commands.ItemSpec{
			ProductType: item.ProductType,
			WidthMm:     item.WidthMm,
			HeightMm:    item.HeightMm,
			Quantity:    item.Quantity,
		}
	}

	cmd, err := commands.NewReplaceItemsCommand(id, specs)
	if err != nil {
		return badRequest(ctx, "Invalid items data: "+err.Error())
	}

	saved, err := s.replaceItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsRequired) ||
			errors.Is(err, errs.ErrValueIsInvalid) ||
			errors.Is(err, errs.ErrValueIsOutOfRange) {
			return badRequest(ctx, "Invalid items data: "+err.Error())
		}
		return writeError(ctx, err)
	}

	response := make([]ItemResponse, len(saved))
	for i, item := range saved {
		response[i] = itemFromDomain(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClearItems handles DELETE /api/v1/orders/:id/items - removes all items.
func (s *Server) ClearItems(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewReplaceItemsCommand(id, nil)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if _, err = s.replaceItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderSummary handles GET /api/v1/orders/:id/summary - material requirements.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderSummaryQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaryFromDomain(summary))
}

func (s *Server) transition(ctx echo.Context, apply func(id int64) (*order.Order, error)) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	updated, err := apply(id)
	if err != nil {
		if errors.Is(err, commands.ErrOrderIDIsInvalid) {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func summaryFromDomain(summary services.Summary) SummaryResponse {
	items := make([]SummaryItemResponse, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = SummaryItemResponse{
			ItemID:            item.ItemID,
			ProductType:       item.ProductType,
			WidthMm:           item.WidthMm,
			HeightMm:          item.HeightMm,
			Quantity:          item.Quantity,
			ProfileMeters:     item.Figures.ProfileMeters,
			GlassSquareMeters: item.Figures.GlassSquareMeters,
			HardwareUnits:     item.Figures.HardwareUnits,
		}
	}

	return SummaryResponse{
		OrderID: summary.OrderID,
		Items:   items,
		Requirements: RequirementsResponse{
			TotalProfileMeters:     summary.Requirements.TotalProfileMeters,
			TotalGlassSquareMeters: summary.Requirements.TotalGlassSquareMeters,
			TotalHardwareUnits:     summary.Requirements.TotalHardwareUnits,
		},
	}
}
