package http

import (
	"errors"
	"net/http"

	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/core/domain/services"
	"farmadelivery/internal/generated/servers"
	"farmadelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Business failure messages, shown verbatim by the panels.
const (
	notFoundPedido   = "Pedido no encontrado"
	notFoundProducto = "Producto no encontrado"

	msgStockInvalid      = "El stock debe ser un número válido mayor o igual a 0"
	msgLocationInvalid   = "Latitud y longitud deben ser coordenadas válidas"
	msgActiveOrder       = "Solo puedes tener un pedido activo a la vez"
	msgAlreadyAssigned   = "El pedido ya fue tomado por otro repartidor"
	msgRejectedByCourier = "Ya rechazaste este pedido"
	msgNotAssigned       = "El pedido no está asignado a este repartidor"
	msgConcurrentChange  = "El pedido fue modificado por otra operación. Recarga la página."
	msgInvalidTransition = "La acción no es válida para el estado actual del pedido"
	msgInvalidRequest    = "Datos de la solicitud inválidos"
	msgInternalError     = "Error interno del servidor"
)

// fail maps a use case error to a status code and a Result body.
// Unexpected errors are logged and answered with a generic message.
func (s *Server) fail(ctx echo.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return resultError(ctx, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrCourierHasActiveOrder):
		return resultError(ctx, http.StatusConflict, msgActiveOrder)
	case errors.Is(err, pedido.ErrCourierAlreadyAssigned):
		return resultError(ctx, http.StatusConflict, msgAlreadyAssigned)
	case errors.Is(err, pedido.ErrCourierRejectedPedido):
		return resultError(ctx, http.StatusConflict, msgRejectedByCourier)
	case errors.Is(err, pedido.ErrPedidoNotAssignedToCourier):
		return resultError(ctx, http.StatusConflict, msgNotAssigned)
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return resultError(ctx, http.StatusConflict, msgConcurrentChange)
	case errors.Is(err, errs.ErrValueIsInvalid):
		return resultError(ctx, http.StatusConflict, msgInvalidTransition)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		return resultError(ctx, http.StatusBadRequest, msgInvalidRequest)
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return resultError(ctx, http.StatusInternalServerError, msgInternalError)
}

func invalidRequest(ctx echo.Context) error {
	return resultError(ctx, http.StatusBadRequest, msgInvalidRequest)
}

func resultOK(ctx echo.Context, mensaje string) error {
	return ctx.JSON(http.StatusOK, servers.Result{Success: true, Mensaje: &mensaje})
}

func resultError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Result{Success: false, Error: &message})
}
