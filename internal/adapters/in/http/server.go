package http

import (
	"diner/internal/core/application/usecases/commands"
	"diner/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server wires the resource pipelines to their command and query handlers.
type Server struct {
	// Command handlers
	createDishCmd  commands.CreateDishCommandHandler
	updateDishCmd  commands.UpdateDishCommandHandler
	createOrderCmd commands.CreateOrderCommandHandler
	updateOrderCmd commands.UpdateOrderCommandHandler
	removeOrderCmd commands.RemoveOrderCommandHandler

	// Query handlers
	getAllDishes queries.GetAllDishesQueryHandler
	getDish      queries.GetDishQueryHandler
	getAllOrders queries.GetAllOrdersQueryHandler
	getOrder     queries.GetOrderQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createDishCmd commands.CreateDishCommandHandler,
	updateDishCmd commands.UpdateDishCommandHandler,
	createOrderCmd commands.CreateOrderCommandHandler,
	updateOrderCmd commands.UpdateOrderCommandHandler,
	removeOrderCmd commands.RemoveOrderCommandHandler,
	getAllDishes queries.GetAllDishesQueryHandler,
	getDish queries.GetDishQueryHandler,
	getAllOrders queries.GetAllOrdersQueryHandler,
	getOrder queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createDishCmd:  createDishCmd,
		updateDishCmd:  updateDishCmd,
		createOrderCmd: createOrderCmd,
		updateOrderCmd: updateOrderCmd,
		removeOrderCmd: removeOrderCmd,
		getAllDishes:   getAllDishes,
		getDish:        getDish,
		getAllOrders:   getAllOrders,
		getOrder:       getOrder,
	}
}

// RegisterRoutes mounts every resource pipeline on the echo instance.
// Stage order within each pipeline is significant: later stages assume
// invariants established by earlier ones (a record exists before its
// status is checked).
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/dishes", s.pipeline(
		s.listDishes,
	))
	e.POST("/dishes", s.pipeline(
		s.bindDishBody,
		s.requireDishFields,
		s.priceIsPositiveInteger,
		s.createDish,
	))
	e.GET("/dishes/:dishId", s.pipeline(
		s.lookupDish,
		s.readDish,
	))
	e.PUT("/dishes/:dishId", s.pipeline(
		s.lookupDish,
		s.bindDishBody,
		s.requireDishFields,
		s.priceIsPositiveInteger,
		s.dishIDMatchesRoute,
		s.updateDish,
	))

	e.GET("/orders", s.pipeline(
		s.listOrders,
	))
	e.POST("/orders", s.pipeline(
		s.bindOrderBody,
		s.requireOrderFields,
		s.dishesEachQuantityValid,
		s.createOrder,
	))
	e.GET("/orders/:orderId", s.pipeline(
		s.lookupOrder,
		s.readOrder,
	))
	e.PUT("/orders/:orderId", s.pipeline(
		s.lookupOrder,
		s.bindOrderBody,
		s.requireOrderFields,
		s.dishesEachQuantityValid,
		s.orderIDMatchesRoute,
		s.statusTransitionValid,
		s.updateOrder,
	))
	e.DELETE("/orders/:orderId", s.pipeline(
		s.lookupOrder,
		s.statusIsPending,
		s.destroyOrder,
	))
}
