package cmd

import (
	httpin "diner/internal/adapters/in/http"
	"diner/internal/adapters/out/idgen"
	"diner/internal/adapters/out/inmemory/dishrepo"
	"diner/internal/adapters/out/inmemory/orderrepo"
	"diner/internal/core/application/usecases/commands"
	"diner/internal/core/application/usecases/queries"
)

// CompositionRoot owns the process-wide collaborators (the in-memory
// stores and the identifier generator) and builds the command and query
// handlers on top of them. Every handler created here shares the same two
// stores, which makes the stores the single owner of all records for the
// process lifetime.
type CompositionRoot struct {
	dishes *dishrepo.Repository
	orders *orderrepo.Repository
	ids    *idgen.Generator
}

// NewCompositionRoot creates the composition root with fresh empty stores.
func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		dishes: dishrepo.NewRepository(),
		orders: orderrepo.NewRepository(),
		ids:    idgen.NewGenerator(),
	}
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishes, c.ids)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishes)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.ids)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateGetAllDishesQueryHandler() queries.GetAllDishesQueryHandler {
	return queries.NewGetAllDishesQueryHandler(c.dishes)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishes)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

// CreateHTTPServer builds the HTTP server with all pipelines wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateDishCommandHandler(),
		c.CreateUpdateDishCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.CreateGetAllDishesQueryHandler(),
		c.CreateGetDishQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}
