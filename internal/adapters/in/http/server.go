// Package http exposes the service over REST with echo. Handlers translate
// between the wire shapes and the application's commands and queries; all
// business decisions stay behind the handlers.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	assignShipperHandler      commands.AssignShipperCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	deleteNotificationHandler commands.DeleteNotificationCommandHandler
	clearNotificationsHandler commands.ClearNotificationsCommandHandler
	trackLocationHandler      commands.TrackLocationCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getCountersHandler       queries.GetCountersQueryHandler
	getRevenueHandler        queries.GetRevenueQueryHandler
	getTopFoodsHandler       queries.GetTopFoodsQueryHandler
	getNotificationsHandler  queries.GetNotificationsQueryHandler
	getLatestLocationHandler queries.GetLatestLocationQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignShipperHandler commands.AssignShipperCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteNotificationHandler commands.DeleteNotificationCommandHandler,
	clearNotificationsHandler commands.ClearNotificationsCommandHandler,
	trackLocationHandler commands.TrackLocationCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCountersHandler queries.GetCountersQueryHandler,
	getRevenueHandler queries.GetRevenueQueryHandler,
	getTopFoodsHandler queries.GetTopFoodsQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getLatestLocationHandler queries.GetLatestLocationQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		assignShipperHandler:      assignShipperHandler,
		cancelOrderHandler:        cancelOrderHandler,
		deleteNotificationHandler: deleteNotificationHandler,
		clearNotificationsHandler: clearNotificationsHandler,
		trackLocationHandler:      trackLocationHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getCountersHandler:        getCountersHandler,
		getRevenueHandler:         getRevenueHandler,
		getTopFoodsHandler:        getTopFoodsHandler,
		getNotificationsHandler:   getNotificationsHandler,
		getLatestLocationHandler:  getLatestLocationHandler,
	}
}

// RegisterRoutes binds every route to its handler.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats/counters", s.GetCounters)
	api.GET("/orders/stats/revenue", s.GetRevenue)
	api.GET("/orders/stats/top-foods", s.GetTopFoods)
	api.GET("/orders/notifications", s.GetNotifications)
	api.DELETE("/orders/notifications", s.ClearNotifications)
	api.DELETE("/orders/notifications/:id", s.DeleteNotification)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/assign", s.AssignShipper)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/cancel", s.CancelOrder)

	api.POST("/location", s.TrackLocation)
	api.GET("/location/:userId/latest", s.GetLatestLocation)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// createOrderRequest is the checkout request body.
type createOrderRequest struct {
	UserID                string                   `json:"userId"`
	UserName              string                   `json:"userName"`
	UserPhone             string                   `json:"userPhone"`
	Items                 []createOrderItemRequest `json:"items"`
	Subtotal              int64                    `json:"subtotal"`
	DeliveryFee           int64                    `json:"deliveryFee"`
	ServiceFee            int64                    `json:"serviceFee"`
	Total                 int64                    `json:"total"`
	DeliveryAddress       string                   `json:"deliveryAddress"`
	Note                  string                   `json:"note"`
	EstimatedDeliveryTime string                   `json:"estimatedDeliveryTime"`
}

type createOrderItemRequest struct {
	FoodID   string `json:"foodId"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CreateOrderItem{
			FoodID:   item.FoodID,
			Name:     item.Name,
			Image:    item.Image,
			Size:     item.Size,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.UserID, req.UserName, req.UserPhone,
		items,
		req.Subtotal, req.DeliveryFee, req.ServiceFee, req.Total,
		req.DeliveryAddress, req.Note, req.EstimatedDeliveryTime,
	)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("userId"),
		ctx.QueryParam("shipperId"),
		ctx.QueryParam("restaurantId"),
	)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// assignShipperRequest is the shipper assignment body.
type assignShipperRequest struct {
	ShipperID   string `json:"shipperId"`
	ShipperName string `json:"shipperName"`
}

// AssignShipper handles PUT /api/orders/:id/assign.
func (s *Server) AssignShipper(ctx echo.Context) error {
	var req assignShipperRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cmd, err := commands.NewAssignShipperCommand(ctx.Param("id"), shipperID, req.ShipperName)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	updated, err := s.assignShipperHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// updateStatusRequest is the generic transition body.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), target)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles PUT /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetCounters handles GET /api/orders/stats/counters.
func (s *Server) GetCounters(ctx echo.Context) error {
	query, err := queries.NewGetCountersQuery(ctx.QueryParam("restaurantId"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	resp, err := s.getCountersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetRevenue handles GET /api/orders/stats/revenue. The endpoint never
// reports an error: bad parameters or storage failures all degrade to the
// zero-filled daily series inside the handler chain.
func (s *Server) GetRevenue(ctx echo.Context) error {
	query, err := queries.NewGetRevenueQuery(
		ctx.QueryParam("granularity"),
		ctx.QueryParam("restaurantId"),
	)
	if err != nil {
		// Malformed parameters degrade like internal failures do: the
		// handler turns the unconstructed query into the empty series.
		query = queries.GetRevenueQuery{}
	}

	return ctx.JSON(http.StatusOK, s.getRevenueHandler.Handle(ctx.Request().Context(), query))
}

// GetTopFoods handles GET /api/orders/stats/top-foods. A malformed limit is
// treated as absent; the query constructor clamps it anyway.
func (s *Server) GetTopFoods(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	query, err := queries.NewGetTopFoodsQuery(limit, ctx.QueryParam("restaurantId"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	foods, err := s.getTopFoodsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, foods)
}

// GetNotifications handles GET /api/orders/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	feed, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), queries.NewGetNotificationsQuery())
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, feed)
}

// ClearNotifications handles DELETE /api/orders/notifications.
func (s *Server) ClearNotifications(ctx echo.Context) error {
	if err := s.clearNotificationsHandler.Handle(
		ctx.Request().Context(),
		commands.NewClearNotificationsCommand(),
	); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/orders/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(id)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.deleteNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// trackLocationRequest is the position sample body.
type trackLocationRequest struct {
	UserID string  `json:"userId"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// TrackLocation handles POST /api/location.
func (s *Server) TrackLocation(ctx echo.Context) error {
	var req trackLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewTrackLocationCommand(req.UserID, req.Lat, req.Lng)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.trackLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetLatestLocation handles GET /api/location/:userId/latest.
func (s *Server) GetLatestLocation(ctx echo.Context) error {
	query, err := queries.NewGetLatestLocationQuery(ctx.Param("userId"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	point, err := s.getLatestLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, point)
}

// orderToResponse maps the aggregate a command returned into the shared
// display shape, so command and query responses look identical on the wire.
func orderToResponse(o *order.Order) queries.OrderResponse {
	items := make([]queries.OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		var foodID string
		if id := item.FoodID(); id != nil {
			foodID = id.String()
		}
		items = append(items, queries.OrderItemResponse{
			FoodID:     foodID,
			Name:       item.Name(),
			Image:      item.Image(),
			Size:       item.Size(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
			TotalPrice: item.TotalPrice(),
		})
	}

	resp := queries.OrderResponse{
		ID:                    o.ID(),
		Number:                o.Number(),
		UserID:                o.Customer().ID(),
		UserName:              o.Customer().Name(),
		UserPhone:             o.Customer().Phone(),
		Items:                 items,
		Subtotal:              o.Pricing().Subtotal(),
		DeliveryFee:           o.Pricing().DeliveryFee(),
		ServiceFee:            o.Pricing().ServiceFee(),
		Total:                 o.Pricing().Total(),
		DeliveryAddress:       o.DeliveryAddress(),
		Note:                  o.Note(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		Status:                o.Status().String(),
		ShipperName:           o.ShipperName(),
		RestaurantName:        o.RestaurantName(),
		RestaurantAddress:     o.RestaurantAddress(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
	if id := o.Shipper(); id != nil {
		resp.ShipperID = id.String()
	}
	if id := o.Restaurant(); id != nil {
		resp.RestaurantID = id.String()
	}
	return resp
}

// errorFromDomain maps application errors onto HTTP statuses: validation
// failures to 400, missing objects to 404, illegal transitions to 400, lost
// conditional updates to 409, everything else to 500.
func errorFromDomain(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrItemsAreRequired):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyModified):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

