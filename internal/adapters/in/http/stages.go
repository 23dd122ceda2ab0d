package http

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"diner/internal/core/application/usecases/queries"
	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"
)

// bindDishBody decodes the request body into the loose dish DTO.
func (s *Server) bindDishBody(rc *requestContext) error {
	var body struct {
		Data dishPayload `json:"data"`
	}
	if err := rc.echoCtx.Bind(&body); err != nil {
		return newProblem(http.StatusBadRequest, "request body must be JSON with a data object")
	}
	rc.dishBody = &body.Data
	return nil
}

// bindOrderBody decodes the request body into the loose order DTO.
func (s *Server) bindOrderBody(rc *requestContext) error {
	var body struct {
		Data orderPayload `json:"data"`
	}
	if err := rc.echoCtx.Bind(&body); err != nil {
		return newProblem(http.StatusBadRequest, "request body must be JSON with a data object")
	}
	rc.orderBody = &body.Data
	return nil
}

// payloadFields is implemented by both loose DTOs so the require-fields
// stage can walk fields by name in declared order.
type payloadFields interface {
	field(name string) any
}

// requireFields fails with the first missing (falsy) field, in declared
// order.
func requireFields(resource string, body payloadFields, names []string) error {
	for _, name := range names {
		if !truthy(body.field(name)) {
			return newProblem(http.StatusBadRequest, "%s must include a %s", resource, name)
		}
	}
	return nil
}

// requireDishFields checks the dish body for name, description, price and
// image_url, in that order.
func (s *Server) requireDishFields(rc *requestContext) error {
	return requireFields("Dish", rc.dishBody, []string{"name", "description", "price", "image_url"})
}

// requireOrderFields checks the order body for deliverTo, mobileNumber and
// dishes, in that order.
func (s *Server) requireOrderFields(rc *requestContext) error {
	return requireFields("Order", rc.orderBody, []string{"deliverTo", "mobileNumber", "dishes"})
}

// priceIsPositiveInteger fails unless the dish price is an integer strictly
// greater than 0. Fractional numbers and non-numeric values fail here.
func (s *Server) priceIsPositiveInteger(rc *requestContext) error {
	price, isNumber := rc.dishBody.Price.(float64)
	if !isNumber || price != math.Trunc(price) || price <= 0 {
		return newProblem(http.StatusBadRequest, "Dish must have a price that is an integer greater than 0")
	}
	return nil
}

// dishesEachQuantityValid fails if the dish list is empty or not a list,
// and otherwise rejects the first line item whose quantity is missing,
// non-integer or negative. Quantity zero passes this check.
func (s *Server) dishesEachQuantityValid(rc *requestContext) error {
	entries, isList := rc.orderBody.Dishes.([]any)
	if !isList || len(entries) == 0 {
		return newProblem(http.StatusBadRequest, "Order must include at least one dish")
	}

	for i, entry := range entries {
		fields, _ := entry.(map[string]any)
		quantity, isNumber := fields["quantity"].(float64)
		if fields["quantity"] == nil || !isNumber || quantity != math.Trunc(quantity) || quantity < 0 {
			return newProblem(http.StatusBadRequest,
				"Dish %d must have a quantity that is an integer greater than 0", i)
		}
	}
	return nil
}

// lookupDish resolves the route id against the menu and stores the found
// dish in the request context for later stages.
func (s *Server) lookupDish(rc *requestContext) error {
	dishID := rc.echoCtx.Param("dishId")

	query, err := queries.NewGetDishQuery(dishID)
	if err != nil {
		return err
	}

	found, err := s.getDish.Handle(rc.echoCtx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return newProblem(http.StatusNotFound, "Dish does not exist: %s", dishID)
		}
		return err
	}

	rc.dish = found
	return nil
}

// lookupOrder resolves the route id against the order store and stores the
// found order in the request context for later stages.
func (s *Server) lookupOrder(rc *requestContext) error {
	orderID := rc.echoCtx.Param("orderId")

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	found, err := s.getOrder.Handle(rc.echoCtx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return newProblem(http.StatusNotFound, "Order does not exist: %s", orderID)
		}
		return err
	}

	rc.order = found
	return nil
}

// dishIDMatchesRoute fails when the body supplies an id that differs from
// the route id. A body with no id passes.
func (s *Server) dishIDMatchesRoute(rc *requestContext) error {
	routeID := rc.echoCtx.Param("dishId")
	bodyID := rc.dishBody.ID

	if bodyID != "" && bodyID != routeID {
		return newProblem(http.StatusBadRequest,
			"Dish id does not match route id. Dish: %s, Route: %s", bodyID, routeID)
	}
	return nil
}

// orderIDMatchesRoute fails when the body supplies an id that differs from
// the route id. A body with no id passes.
func (s *Server) orderIDMatchesRoute(rc *requestContext) error {
	routeID := rc.echoCtx.Param("orderId")
	bodyID := rc.orderBody.ID

	if bodyID != "" && bodyID != routeID {
		return newProblem(http.StatusBadRequest,
			"Order id does not match route id. Order: %s, Route: %s", bodyID, routeID)
	}
	return nil
}

// statusTransitionValid enforces the order state machine for updates:
// a delivered order rejects any change, and the requested status must be
// one of the recognized values.
func (s *Server) statusTransitionValid(rc *requestContext) error {
	if rc.order.Status().IsTerminal() {
		return newProblem(http.StatusBadRequest, "A delivered order cannot be changed")
	}

	if err := order.Status(rc.orderBody.Status).Validate(); err != nil {
		return newProblem(http.StatusBadRequest,
			"Order must have a status of %s", strings.Join(order.ValidStatusNames(), ", "))
	}
	return nil
}

// statusIsPending fails unless the looked-up order is pending.
func (s *Server) statusIsPending(rc *requestContext) error {
	if rc.order.Status() != order.Pending {
		return newProblem(http.StatusBadRequest, "An order cannot be deleted unless it is pending")
	}
	return nil
}
