package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// GET /farmacia/{farmaciaId}/pedidos/
	GetPharmacyBoard(ctx echo.Context, farmaciaId FarmaciaId) error
	// GET /farmacia/pedido/{id}/
	GetPedidoDetail(ctx echo.Context, id PedidoId) error
	// POST /farmacia/pedido/{id}/confirmar-receta/
	ConfirmRecipe(ctx echo.Context, id PedidoId, params PharmacyActionParams) error
	// POST /farmacia/pedido/{id}/cancelar-receta/
	CancelRecipe(ctx echo.Context, id PedidoId, params PharmacyActionParams) error
	// POST /farmacia/pedido/{id}/entregar-repartidor/
	DispatchToCourier(ctx echo.Context, id PedidoId, params PharmacyActionParams) error
	// POST /farmacia/pedido/{id}/listo-retiro/
	MarkReadyForPickup(ctx echo.Context, id PedidoId, params PharmacyActionParams) error
	// GET /farmacia/{farmaciaId}/inventario/
	GetInventario(ctx echo.Context, farmaciaId FarmaciaId) error
	// POST /farmacia/inventario/producto/{id}/actualizar-stock/
	UpdateStock(ctx echo.Context, id ProductoId, params PharmacyActionParams) error
	// GET /api/repartidor/{repartidorId}/pedidos-disponibles/
	GetAvailablePedidos(ctx echo.Context, repartidorId RepartidorId) error
	// GET /api/repartidor/{repartidorId}/pedidos-activos/
	GetActivePedidos(ctx echo.Context, repartidorId RepartidorId) error
	// POST /api/repartidor/{repartidorId}/ubicacion/
	UpdateCourierLocation(ctx echo.Context, repartidorId RepartidorId) error
	// POST /repartidor/{repartidorId}/aceptar/{id}/
	AcceptPedido(ctx echo.Context, repartidorId RepartidorId, id PedidoId) error
	// POST /repartidor/{repartidorId}/rechazar/{id}/
	RejectPedido(ctx echo.Context, repartidorId RepartidorId, id PedidoId) error
	// POST /repartidor/{repartidorId}/entregar/{id}/
	DeliverPedido(ctx echo.Context, repartidorId RepartidorId, id PedidoId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathInt64(ctx echo.Context, name string) (int64, error) {
	var v int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return v, nil
}

// bindPharmacyActionParams reads the optional X-Farmacia-Id header.
func bindPharmacyActionParams(ctx echo.Context) (PharmacyActionParams, error) {
	var params PharmacyActionParams

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-Farmacia-Id")]
	if !found {
		return params, nil
	}
	if n := len(valueList); n != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Farmacia-Id, got %d", n))
	}

	var farmaciaId FarmaciaId
	err := runtime.BindStyledParameterWithOptions("simple", "X-Farmacia-Id", valueList[0], &farmaciaId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Farmacia-Id: %s", err))
	}
	params.XFarmaciaId = &farmaciaId
	return params, nil
}

func (w *ServerInterfaceWrapper) GetPharmacyBoard(ctx echo.Context) error {
	farmaciaId, err := bindPathInt64(ctx, "farmaciaId")
	if err != nil {
		return err
	}
	return w.Handler.GetPharmacyBoard(ctx, farmaciaId)
}

func (w *ServerInterfaceWrapper) GetPedidoDetail(ctx echo.Context) error {
	id, err := bindPathInt64(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetPedidoDetail(ctx, id)
}

func (w *ServerInterfaceWrapper) ConfirmRecipe(ctx echo.Context) error {
	return w.pharmacyAction(ctx, w.Handler.ConfirmRecipe)
}

func (w *ServerInterfaceWrapper) CancelRecipe(ctx echo.Context) error {
	return w.pharmacyAction(ctx, w.Handler.CancelRecipe)
}

func (w *ServerInterfaceWrapper) DispatchToCourier(ctx echo.Context) error {
	return w.pharmacyAction(ctx, w.Handler.DispatchToCourier)
}

func (w *ServerInterfaceWrapper) MarkReadyForPickup(ctx echo.Context) error {
	return w.pharmacyAction(ctx, w.Handler.MarkReadyForPickup)
}

func (w *ServerInterfaceWrapper) GetInventario(ctx echo.Context) error {
	farmaciaId, err := bindPathInt64(ctx, "farmaciaId")
	if err != nil {
		return err
	}
	return w.Handler.GetInventario(ctx, farmaciaId)
}

func (w *ServerInterfaceWrapper) UpdateStock(ctx echo.Context) error {
	return w.pharmacyAction(ctx, w.Handler.UpdateStock)
}

func (w *ServerInterfaceWrapper) pharmacyAction(ctx echo.Context, handle func(echo.Context, int64, PharmacyActionParams) error) error {
	id, err := bindPathInt64(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindPharmacyActionParams(ctx)
	if err != nil {
		return err
	}
	return handle(ctx, id, params)
}

func (w *ServerInterfaceWrapper) GetAvailablePedidos(ctx echo.Context) error {
	repartidorId, err := bindPathInt64(ctx, "repartidorId")
	if err != nil {
		return err
	}
	return w.Handler.GetAvailablePedidos(ctx, repartidorId)
}

func (w *ServerInterfaceWrapper) GetActivePedidos(ctx echo.Context) error {
	repartidorId, err := bindPathInt64(ctx, "repartidorId")
	if err != nil {
		return err
	}
	return w.Handler.GetActivePedidos(ctx, repartidorId)
}

func (w *ServerInterfaceWrapper) UpdateCourierLocation(ctx echo.Context) error {
	repartidorId, err := bindPathInt64(ctx, "repartidorId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateCourierLocation(ctx, repartidorId)
}

func (w *ServerInterfaceWrapper) courierAction(ctx echo.Context, handle func(echo.Context, RepartidorId, PedidoId) error) error {
	repartidorId, err := bindPathInt64(ctx, "repartidorId")
	if err != nil {
		return err
	}
	id, err := bindPathInt64(ctx, "id")
	if err != nil {
		return err
	}
	return handle(ctx, repartidorId, id)
}

func (w *ServerInterfaceWrapper) AcceptPedido(ctx echo.Context) error {
	return w.courierAction(ctx, w.Handler.AcceptPedido)
}

func (w *ServerInterfaceWrapper) RejectPedido(ctx echo.Context) error {
	return w.courierAction(ctx, w.Handler.RejectPedido)
}

func (w *ServerInterfaceWrapper) DeliverPedido(ctx echo.Context) error {
	return w.courierAction(ctx, w.Handler.DeliverPedido)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/farmacia/:farmaciaId/pedidos/", wrapper.GetPharmacyBoard)
	router.GET(baseURL+"/farmacia/pedido/:id/", wrapper.GetPedidoDetail)
	router.POST(baseURL+"/farmacia/pedido/:id/confirmar-receta/", wrapper.ConfirmRecipe)
	router.POST(baseURL+"/farmacia/pedido/:id/cancelar-receta/", wrapper.CancelRecipe)
	router.POST(baseURL+"/farmacia/pedido/:id/entregar-repartidor/", wrapper.DispatchToCourier)
	router.POST(baseURL+"/farmacia/pedido/:id/listo-retiro/", wrapper.MarkReadyForPickup)
	router.GET(baseURL+"/farmacia/:farmaciaId/inventario/", wrapper.GetInventario)
	router.POST(baseURL+"/farmacia/inventario/producto/:id/actualizar-stock/", wrapper.UpdateStock)
	router.GET(baseURL+"/api/repartidor/:repartidorId/pedidos-disponibles/", wrapper.GetAvailablePedidos)
	router.GET(baseURL+"/api/repartidor/:repartidorId/pedidos-activos/", wrapper.GetActivePedidos)
	router.POST(baseURL+"/api/repartidor/:repartidorId/ubicacion/", wrapper.UpdateCourierLocation)
	router.POST(baseURL+"/repartidor/:repartidorId/aceptar/:id/", wrapper.AcceptPedido)
	router.POST(baseURL+"/repartidor/:repartidorId/rechazar/:id/", wrapper.RejectPedido)
	router.POST(baseURL+"/repartidor/:repartidorId/entregar/:id/", wrapper.DeliverPedido)
}
