package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"farmadelivery/internal/core/application/usecases/commands"
	"farmadelivery/internal/core/application/usecases/queries"
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"
	"farmadelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandler is the shape of every write use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is the shape of every read use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	ConfirmRecipe      CommandHandler[commands.ConfirmRecipeCommand]
	CancelRecipe       CommandHandler[commands.CancelRecipeCommand]
	DispatchToCourier  CommandHandler[commands.DispatchToCourierCommand]
	MarkReadyForPickup CommandHandler[commands.MarkReadyForPickupCommand]
	UpdateStock        CommandHandler[commands.UpdateStockCommand]
	AcceptPedido       CommandHandler[commands.AcceptPedidoCommand]
	RejectPedido       CommandHandler[commands.RejectPedidoCommand]
	DeliverPedido      CommandHandler[commands.DeliverPedidoCommand]

	UpdateCourierLocation CommandHandler[commands.UpdateCourierLocationCommand]

	GetPedido           QueryHandler[queries.GetPedidoQuery, queries.PedidoView]
	GetPharmacyBoard    QueryHandler[queries.GetPharmacyBoardQuery, queries.GetPharmacyBoardQueryResponse]
	GetInventario       QueryHandler[queries.GetInventarioQuery, queries.GetInventarioQueryResponse]
	GetAvailablePedidos QueryHandler[queries.GetAvailablePedidosQuery, []queries.PedidoView]
	GetActivePedidos    QueryHandler[queries.GetActivePedidosQuery, []queries.PedidoView]
}

// Server implements servers.ServerInterface on top of the use cases.
// Action endpoints always answer with a servers.Result body.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}

// Success messages of the action endpoints.
const (
	msgRecipeConfirmed = "Receta confirmada. El pedido pasó a preparación."
	msgRecipeCanceled  = "Pedido cancelado por receta inválida."
	msgDispatched      = "Pedido entregado al repartidor."
	msgReadyForPickup  = "Pedido listo para retiro."
	msgStockUpdated    = "Stock actualizado a %d unidades."
	msgAccepted        = "Pedido aceptado."
	msgRejected        = "Pedido rechazado."
	msgDelivered       = "Pedido entregado."
	msgLocationSaved   = "Ubicación actualizada."
)

// GetPharmacyBoard handles GET /farmacia/{farmaciaId}/pedidos/.
func (s *Server) GetPharmacyBoard(ctx echo.Context, farmaciaId servers.FarmaciaId) error {
	farmaciaID, err := kernel.NewID(farmaciaId)
	if err != nil {
		return invalidRequest(ctx)
	}
	query, err := queries.NewGetPharmacyBoardQuery(farmaciaID)
	if err != nil {
		return invalidRequest(ctx)
	}

	board, err := s.h.GetPharmacyBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}

	return ctx.JSON(http.StatusOK, servers.Board{
		Nuevos:     toPedidos(board.Nuevos),
		Preparando: toPedidos(board.Preparando),
	})
}

// GetPedidoDetail handles GET /farmacia/pedido/{id}/ with the HTML
// fragment of the detail modal.
func (s *Server) GetPedidoDetail(ctx echo.Context, id servers.PedidoId) error {
	pedidoID, err := kernel.NewID(id)
	if err != nil {
		return invalidRequest(ctx)
	}
	query, err := queries.NewGetPedidoQuery(pedidoID)
	if err != nil {
		return invalidRequest(ctx)
	}

	view, err := s.h.GetPedido.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}

	html, err := renderPedidoDetail(view)
	if err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}
	return ctx.HTML(http.StatusOK, string(html))
}

// ConfirmRecipe handles POST /farmacia/pedido/{id}/confirmar-receta/.
func (s *Server) ConfirmRecipe(ctx echo.Context, id servers.PedidoId, params servers.PharmacyActionParams) error {
	return pharmacyAction(s, ctx, id, params, commands.NewConfirmRecipeCommand, s.h.ConfirmRecipe, msgRecipeConfirmed)
}

// CancelRecipe handles POST /farmacia/pedido/{id}/cancelar-receta/.
func (s *Server) CancelRecipe(ctx echo.Context, id servers.PedidoId, params servers.PharmacyActionParams) error {
	return pharmacyAction(s, ctx, id, params, commands.NewCancelRecipeCommand, s.h.CancelRecipe, msgRecipeCanceled)
}

// DispatchToCourier handles POST /farmacia/pedido/{id}/entregar-repartidor/.
func (s *Server) DispatchToCourier(ctx echo.Context, id servers.PedidoId, params servers.PharmacyActionParams) error {
	return pharmacyAction(s, ctx, id, params, commands.NewDispatchToCourierCommand, s.h.DispatchToCourier, msgDispatched)
}

// MarkReadyForPickup handles POST /farmacia/pedido/{id}/listo-retiro/.
func (s *Server) MarkReadyForPickup(ctx echo.Context, id servers.PedidoId, params servers.PharmacyActionParams) error {
	return pharmacyAction(s, ctx, id, params, commands.NewMarkReadyForPickupCommand, s.h.MarkReadyForPickup, msgReadyForPickup)
}

// GetInventario handles GET /farmacia/{farmaciaId}/inventario/.
func (s *Server) GetInventario(ctx echo.Context, farmaciaId servers.FarmaciaId) error {
	farmaciaID, err := kernel.NewID(farmaciaId)
	if err != nil {
		return invalidRequest(ctx)
	}
	query, err := queries.NewGetInventarioQuery(farmaciaID)
	if err != nil {
		return invalidRequest(ctx)
	}

	inventario, err := s.h.GetInventario.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, notFoundProducto)
	}
	return ctx.JSON(http.StatusOK, toInventario(inventario))
}

// UpdateStock handles POST /farmacia/inventario/producto/{id}/actualizar-stock/
// with a form-encoded stock value.
func (s *Server) UpdateStock(ctx echo.Context, id servers.ProductoId, params servers.PharmacyActionParams) error {
	stock, err := producto.ParseStock(ctx.FormValue("stock"))
	if err != nil {
		return resultError(ctx, http.StatusBadRequest, msgStockInvalid)
	}

	productoID, err := kernel.NewID(id)
	if err != nil {
		return invalidRequest(ctx)
	}
	scope, err := pharmacyScope(params)
	if err != nil {
		return invalidRequest(ctx)
	}
	cmd, err := commands.NewUpdateStockCommand(productoID, stock, scope)
	if err != nil {
		return invalidRequest(ctx)
	}

	if err = s.h.UpdateStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, notFoundProducto)
	}
	return resultOK(ctx, fmt.Sprintf(msgStockUpdated, stock))
}

// GetAvailablePedidos handles GET /api/repartidor/{repartidorId}/pedidos-disponibles/.
func (s *Server) GetAvailablePedidos(ctx echo.Context, repartidorId servers.RepartidorId) error {
	courierID, err := kernel.NewID(repartidorId)
	if err != nil {
		return invalidRequest(ctx)
	}
	query, err := queries.NewGetAvailablePedidosQuery(courierID)
	if err != nil {
		return invalidRequest(ctx)
	}

	views, err := s.h.GetAvailablePedidos.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}
	return ctx.JSON(http.StatusOK, toPedidos(views))
}

// GetActivePedidos handles GET /api/repartidor/{repartidorId}/pedidos-activos/.
func (s *Server) GetActivePedidos(ctx echo.Context, repartidorId servers.RepartidorId) error {
	courierID, err := kernel.NewID(repartidorId)
	if err != nil {
		return invalidRequest(ctx)
	}
	query, err := queries.NewGetActivePedidosQuery(courierID)
	if err != nil {
		return invalidRequest(ctx)
	}

	views, err := s.h.GetActivePedidos.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}
	return ctx.JSON(http.StatusOK, toPedidos(views))
}

// UpdateCourierLocation handles POST /api/repartidor/{repartidorId}/ubicacion/
// with form-encoded latitud and longitud.
func (s *Server) UpdateCourierLocation(ctx echo.Context, repartidorId servers.RepartidorId) error {
	courierID, err := kernel.NewID(repartidorId)
	if err != nil {
		return invalidRequest(ctx)
	}
	lat, err := strconv.ParseFloat(ctx.FormValue("latitud"), 64)
	if err != nil {
		return resultError(ctx, http.StatusBadRequest, msgLocationInvalid)
	}
	lng, err := strconv.ParseFloat(ctx.FormValue("longitud"), 64)
	if err != nil {
		return resultError(ctx, http.StatusBadRequest, msgLocationInvalid)
	}
	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, lat, lng)
	if err != nil {
		return resultError(ctx, http.StatusBadRequest, msgLocationInvalid)
	}

	if err = s.h.UpdateCourierLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}
	return resultOK(ctx, msgLocationSaved)
}

// AcceptPedido handles POST /repartidor/{repartidorId}/aceptar/{id}/.
func (s *Server) AcceptPedido(ctx echo.Context, repartidorId servers.RepartidorId, id servers.PedidoId) error {
	return courierAction(s, ctx, repartidorId, id, commands.NewAcceptPedidoCommand, s.h.AcceptPedido, msgAccepted)
}

// RejectPedido handles POST /repartidor/{repartidorId}/rechazar/{id}/.
func (s *Server) RejectPedido(ctx echo.Context, repartidorId servers.RepartidorId, id servers.PedidoId) error {
	return courierAction(s, ctx, repartidorId, id, commands.NewRejectPedidoCommand, s.h.RejectPedido, msgRejected)
}

// DeliverPedido handles POST /repartidor/{repartidorId}/entregar/{id}/.
func (s *Server) DeliverPedido(ctx echo.Context, repartidorId servers.RepartidorId, id servers.PedidoId) error {
	return courierAction(s, ctx, repartidorId, id, commands.NewDeliverPedidoCommand, s.h.DeliverPedido, msgDelivered)
}

// pharmacyScope limits the action to the pharmacy named by X-Farmacia-Id.
// Without the header the action is not limited.
func pharmacyScope(params servers.PharmacyActionParams) (commands.PharmacyScope, error) {
	if params.XFarmaciaId == nil {
		return commands.AnyFarmacia, nil
	}
	farmaciaID, err := kernel.NewID(*params.XFarmaciaId)
	if err != nil {
		return commands.PharmacyScope{}, err
	}
	return commands.ForFarmacia(farmaciaID)
}

func pharmacyAction[C any](
	s *Server,
	ctx echo.Context,
	id int64,
	params servers.PharmacyActionParams,
	newCommand func(kernel.ID, commands.PharmacyScope) (C, error),
	handler CommandHandler[C],
	success string,
) error {
	pedidoID, err := kernel.NewID(id)
	if err != nil {
		return invalidRequest(ctx)
	}
	scope, err := pharmacyScope(params)
	if err != nil {
		return invalidRequest(ctx)
	}
	cmd, err := newCommand(pedidoID, scope)
	if err != nil {
		return invalidRequest(ctx)
	}

	if err = handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}
	return resultOK(ctx, success)
}

func courierAction[C any](
	s *Server,
	ctx echo.Context,
	repartidorId, id int64,
	newCommand func(pedidoID, courierID kernel.ID) (C, error),
	handler CommandHandler[C],
	success string,
) error {
	courierID, err := kernel.NewID(repartidorId)
	if err != nil {
		return invalidRequest(ctx)
	}
	pedidoID, err := kernel.NewID(id)
	if err != nil {
		return invalidRequest(ctx)
	}
	cmd, err := newCommand(pedidoID, courierID)
	if err != nil {
		return invalidRequest(ctx)
	}

	if err = handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, notFoundPedido)
	}
	return resultOK(ctx, success)
}
