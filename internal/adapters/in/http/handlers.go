package http

import (
	"net/http"

	"diner/internal/core/application/usecases/commands"
	"diner/internal/core/application/usecases/queries"
	"diner/internal/core/domain/model/order"
)

// Terminal stages. Each performs the actual read or mutation through a
// command or query handler and shapes the success response; failures are
// returned to the pipeline runner for the translator to render.

// listDishes handles GET /dishes.
func (s *Server) listDishes(rc *requestContext) error {
	all, err := s.getAllDishes.Handle(rc.echoCtx.Request().Context(), queries.NewGetAllDishesQuery())
	if err != nil {
		return err
	}
	return rc.echoCtx.JSON(http.StatusOK, dataEnvelope{Data: dishListResponseFrom(all)})
}

// readDish handles GET /dishes/:dishId. The record was placed in the
// request context by the lookup stage.
func (s *Server) readDish(rc *requestContext) error {
	return rc.echoCtx.JSON(http.StatusOK, dataEnvelope{Data: dishResponseFrom(rc.dish)})
}

// createDish handles POST /dishes.
func (s *Server) createDish(rc *requestContext) error {
	body := rc.dishBody

	cmd, err := commands.NewCreateDishCommand(body.Name, body.Description, intFromPayload(body.Price), body.ImageURL)
	if err != nil {
		return err
	}

	created, err := s.createDishCmd.Handle(rc.echoCtx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return rc.echoCtx.JSON(http.StatusCreated, dataEnvelope{Data: dishResponseFrom(created)})
}

// updateDish handles PUT /dishes/:dishId.
func (s *Server) updateDish(rc *requestContext) error {
	body := rc.dishBody

	cmd, err := commands.NewUpdateDishCommand(
		rc.echoCtx.Param("dishId"),
		body.Name,
		body.Description,
		intFromPayload(body.Price),
		body.ImageURL,
	)
	if err != nil {
		return err
	}

	updated, err := s.updateDishCmd.Handle(rc.echoCtx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return rc.echoCtx.JSON(http.StatusOK, dataEnvelope{Data: dishResponseFrom(updated)})
}

// listOrders handles GET /orders.
func (s *Server) listOrders(rc *requestContext) error {
	all, err := s.getAllOrders.Handle(rc.echoCtx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}
	return rc.echoCtx.JSON(http.StatusOK, dataEnvelope{Data: orderListResponseFrom(all)})
}

// readOrder handles GET /orders/:orderId.
func (s *Server) readOrder(rc *requestContext) error {
	return rc.echoCtx.JSON(http.StatusOK, dataEnvelope{Data: orderResponseFrom(rc.order)})
}

// createOrder handles POST /orders. The caller-supplied status is stored
// verbatim; only updates run it through the state machine.
func (s *Server) createOrder(rc *requestContext) error {
	body := rc.orderBody

	items, err := lineItemsFromPayload(body.Dishes)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(body.DeliverTo, body.MobileNumber, order.Status(body.Status), items)
	if err != nil {
		return err
	}

	created, err := s.createOrderCmd.Handle(rc.echoCtx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return rc.echoCtx.JSON(http.StatusCreated, dataEnvelope{Data: orderResponseFrom(created)})
}

// updateOrder handles PUT /orders/:orderId.
func (s *Server) updateOrder(rc *requestContext) error {
	body := rc.orderBody

	items, err := lineItemsFromPayload(body.Dishes)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(
		rc.echoCtx.Param("orderId"),
		body.DeliverTo,
		body.MobileNumber,
		order.Status(body.Status),
		items,
	)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderCmd.Handle(rc.echoCtx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return rc.echoCtx.JSON(http.StatusOK, dataEnvelope{Data: orderResponseFrom(updated)})
}

// destroyOrder handles DELETE /orders/:orderId.
func (s *Server) destroyOrder(rc *requestContext) error {
	cmd, err := commands.NewRemoveOrderCommand(rc.echoCtx.Param("orderId"))
	if err != nil {
		return err
	}

	if err := s.removeOrderCmd.Handle(rc.echoCtx.Request().Context(), cmd); err != nil {
		return err
	}
	return rc.echoCtx.NoContent(http.StatusNoContent)
}

// intFromPayload narrows a dynamically typed JSON number to int. The price
// stage has already established the value is an integral number.
func intFromPayload(v any) int {
	f, _ := v.(float64)
	return int(f)
}
