package cmd

import (
	"log/slog"

	httpadapter "farmadelivery/internal/adapters/in/http"
	"farmadelivery/internal/adapters/out/postgres"
	"farmadelivery/internal/adapters/out/postgres/outboxrepo"
	"farmadelivery/internal/core/application/usecases/commands"
	"farmadelivery/internal/core/application/usecases/queries"
	"farmadelivery/internal/core/domain/services"
	"farmadelivery/internal/core/ports"
	"farmadelivery/internal/jobs"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher services.CourierDispatcher
	clock      clockwork.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: services.NewCourierDispatcher(),
		clock:      clockwork.NewRealClock(),
		logger:     logger,
	}
}

func (c *CompositionRoot) pedidoUoWFactory() commands.PedidoUoWFactory {
	return FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productoUoWFactory() commands.ProductoUoWFactory {
	return FuncProductoUoWFactory(func() commands.ProductoUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ubicacionUoWFactory() commands.UbicacionUoWFactory {
	return FuncUbicacionUoWFactory(func() commands.UbicacionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateConfirmRecipeCommandHandler() commands.ConfirmRecipeCommandHandler {
	return commands.NewConfirmRecipeCommandHandler(c.pedidoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelRecipeCommandHandler() commands.CancelRecipeCommandHandler {
	return commands.NewCancelRecipeCommandHandler(c.pedidoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDispatchToCourierCommandHandler() commands.DispatchToCourierCommandHandler {
	return commands.NewDispatchToCourierCommandHandler(c.pedidoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkReadyForPickupCommandHandler() commands.MarkReadyForPickupCommandHandler {
	return commands.NewMarkReadyForPickupCommandHandler(c.pedidoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateStockCommandHandler() commands.UpdateStockCommandHandler {
	return commands.NewUpdateStockCommandHandler(c.productoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptPedidoCommandHandler() commands.AcceptPedidoCommandHandler {
	return commands.NewAcceptPedidoCommandHandler(c.pedidoUoWFactory(), c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateRejectPedidoCommandHandler() commands.RejectPedidoCommandHandler {
	return commands.NewRejectPedidoCommandHandler(c.pedidoUoWFactory())
}

func (c *CompositionRoot) CreateDeliverPedidoCommandHandler() commands.DeliverPedidoCommandHandler {
	return commands.NewDeliverPedidoCommandHandler(c.pedidoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.ubicacionUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler(publisher ports.EventPublisher) commands.PublishOutboxCommandHandler {
	return commands.NewPublishOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), publisher, c.clock)
}

func (c *CompositionRoot) CreateGetPedidoQueryHandler() queries.GetPedidoQueryHandler {
	return queries.NewGetPedidoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPharmacyBoardQueryHandler() queries.GetPharmacyBoardQueryHandler {
	return queries.NewGetPharmacyBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventarioQueryHandler() queries.GetInventarioQueryHandler {
	return queries.NewGetInventarioQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePedidosQueryHandler() queries.GetAvailablePedidosQueryHandler {
	return queries.NewGetAvailablePedidosQueryHandler(c.gormDB, c.dispatcher)
}

func (c *CompositionRoot) CreateGetActivePedidosQueryHandler() queries.GetActivePedidosQueryHandler {
	return queries.NewGetActivePedidosQueryHandler(c.gormDB, c.dispatcher)
}

// CreateHTTPHandlers wires every use case behind the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		ConfirmRecipe:      c.CreateConfirmRecipeCommandHandler(),
		CancelRecipe:       c.CreateCancelRecipeCommandHandler(),
		DispatchToCourier:  c.CreateDispatchToCourierCommandHandler(),
		MarkReadyForPickup: c.CreateMarkReadyForPickupCommandHandler(),
		UpdateStock:        c.CreateUpdateStockCommandHandler(),
		AcceptPedido:       c.CreateAcceptPedidoCommandHandler(),
		RejectPedido:       c.CreateRejectPedidoCommandHandler(),
		DeliverPedido:      c.CreateDeliverPedidoCommandHandler(),

		UpdateCourierLocation: c.CreateUpdateCourierLocationCommandHandler(),

		GetPedido:           c.CreateGetPedidoQueryHandler(),
		GetPharmacyBoard:    c.CreateGetPharmacyBoardQueryHandler(),
		GetInventario:       c.CreateGetInventarioQueryHandler(),
		GetAvailablePedidos: c.CreateGetAvailablePedidosQueryHandler(),
		GetActivePedidos:    c.CreateGetActivePedidosQueryHandler(),
	}
}

func (c *CompositionRoot) CreateOutboxPublishJob(publisher ports.EventPublisher) *jobs.OutboxPublishJob {
	return jobs.NewOutboxPublishJob(
		c.CreatePublishOutboxCommandHandler(publisher),
		c.cfg.OutboxSchedule,
		c.cfg.OutboxBatchSize,
		c.logger,
	)
}

type FuncPedidoUoWFactory func() commands.PedidoUoW

func (f FuncPedidoUoWFactory) Create() commands.PedidoUoW {
	return f()
}

type FuncProductoUoWFactory func() commands.ProductoUoW

func (f FuncProductoUoWFactory) Create() commands.ProductoUoW {
	return f()
}

type FuncUbicacionUoWFactory func() commands.UbicacionUoW

func (f FuncUbicacionUoWFactory) Create() commands.UbicacionUoW {
	return f()
}
