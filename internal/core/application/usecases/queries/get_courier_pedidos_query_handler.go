package queries

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetAvailablePedidosQueryHandler struct {
	reader     pedidoReader
	dispatcher services.CourierDispatcher
}

func NewGetAvailablePedidosQueryHandler(
	db *gorm.DB,
	dispatcher services.CourierDispatcher,
) GetAvailablePedidosQueryHandler {
	return GetAvailablePedidosQueryHandler{reader: pedidoReader{db: db}, dispatcher: dispatcher}
}

// Handle returns unassigned Listo or EnCamino orders the courier has not
// rejected, best paid first. Ties keep id order.
func (h GetAvailablePedidosQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePedidosQuery,
) ([]PedidoView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := h.reader.find(ctx,
		`status IN ?
		AND courier_id IS NULL
		AND NOT (?::bigint = ANY(COALESCE(rechazado_por, '{}')))`,
		"ganancia DESC, id",
		[]string{pedido.Listo.String(), pedido.EnCamino.String()},
		query.CourierID().Int64(),
	)
	if err != nil {
		return nil, err
	}

	return h.reader.withDistance(ctx, h.dispatcher, query.CourierID(), views)
}

type GetActivePedidosQueryHandler struct {
	reader     pedidoReader
	dispatcher services.CourierDispatcher
}

func NewGetActivePedidosQueryHandler(
	db *gorm.DB,
	dispatcher services.CourierDispatcher,
) GetActivePedidosQueryHandler {
	return GetActivePedidosQueryHandler{reader: pedidoReader{db: db}, dispatcher: dispatcher}
}

func (h GetActivePedidosQueryHandler) Handle(
	ctx context.Context,
	query GetActivePedidosQuery,
) ([]PedidoView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := h.reader.find(ctx,
		"status = ? AND courier_id = ?",
		"id",
		pedido.EnCamino.String(),
		query.CourierID().Int64(),
	)
	if err != nil {
		return nil, err
	}

	return h.reader.withDistance(ctx, h.dispatcher, query.CourierID(), views)
}
