package http

import (
	"diner/internal/core/domain/model/dish"
	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"
)

// dataEnvelope is the uniform success body: every response wraps its
// payload in a "data" property, mirroring the request shape.
type dataEnvelope struct {
	Data any `json:"data"`
}

// errorEnvelope is the uniform failure body rendered by the translator.
type errorEnvelope struct {
	Error string `json:"error"`
}

// dishPayload is the loose request DTO for dish bodies. Price is
// dynamically typed: clients may send it as any JSON value and the
// pipeline decides between "missing" (falsy) and "not a positive integer".
type dishPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// field returns the named payload value for truthiness checks.
func (p *dishPayload) field(name string) any {
	switch name {
	case "name":
		return p.Name
	case "description":
		return p.Description
	case "price":
		return p.Price
	case "image_url":
		return p.ImageURL
	default:
		return nil
	}
}

// orderPayload is the loose request DTO for order bodies. Dishes is
// dynamically typed so the pipeline can distinguish a missing value from a
// non-list value and inspect each line item's quantity.
type orderPayload struct {
	ID           string `json:"id"`
	DeliverTo    string `json:"deliverTo"`
	MobileNumber string `json:"mobileNumber"`
	Status       string `json:"status"`
	Dishes       any    `json:"dishes"`
}

// field returns the named payload value for truthiness checks.
func (p *orderPayload) field(name string) any {
	switch name {
	case "deliverTo":
		return p.DeliverTo
	case "mobileNumber":
		return p.MobileNumber
	case "status":
		return p.Status
	case "dishes":
		return p.Dishes
	default:
		return nil
	}
}

// truthy reports field presence the way the wire contract defines it:
// absent, null, empty string, zero and false all count as missing. A
// decoded JSON list is present even when empty; the emptiness case has its
// own check with its own message.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	default:
		return true
	}
}

// lineItemsFromPayload converts the dynamically typed dish list into domain
// line items. The quantity stage has already validated every entry, so the
// conversion only extracts the known fields and ignores anything else.
func lineItemsFromPayload(raw any) ([]order.LineItem, error) {
	entries, ok := raw.([]any)
	if !ok {
		return nil, errs.NewValueIsRequiredError("dishes")
	}

	items := make([]order.LineItem, 0, len(entries))
	for _, entry := range entries {
		fields, _ := entry.(map[string]any)
		item, err := order.NewLineItem(
			stringField(fields, "id"),
			stringField(fields, "name"),
			stringField(fields, "description"),
			intField(fields, "price"),
			stringField(fields, "image_url"),
			intField(fields, "quantity"),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func stringField(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return s
}

func intField(fields map[string]any, name string) int {
	f, _ := fields[name].(float64)
	return int(f)
}

// dishResponse is the wire representation of a dish.
type dishResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

func dishResponseFrom(d *dish.Dish) dishResponse {
	return dishResponse{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func dishListResponseFrom(all []*dish.Dish) []dishResponse {
	list := make([]dishResponse, len(all))
	for i, d := range all {
		list[i] = dishResponseFrom(d)
	}
	return list
}

// lineItemResponse is the wire representation of one order line item.
type lineItemResponse struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Quantity    int    `json:"quantity"`
}

// orderResponse is the wire representation of an order.
type orderResponse struct {
	ID           string             `json:"id"`
	DeliverTo    string             `json:"deliverTo"`
	MobileNumber string             `json:"mobileNumber"`
	Status       string             `json:"status"`
	Dishes       []lineItemResponse `json:"dishes"`
}

func orderResponseFrom(o *order.Order) orderResponse {
	items := o.Items()
	dishes := make([]lineItemResponse, len(items))
	for i, item := range items {
		dishes[i] = lineItemResponse{
			ID:          item.DishID(),
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			ImageURL:    item.ImageURL(),
			Quantity:    item.Quantity(),
		}
	}

	return orderResponse{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

func orderListResponseFrom(all []*order.Order) []orderResponse {
	list := make([]orderResponse, len(all))
	for i, o := range all {
		list[i] = orderResponseFrom(o)
	}
	return list
}
