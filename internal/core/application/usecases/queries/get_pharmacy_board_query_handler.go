package queries

import (
	"context"

	"farmadelivery/internal/core/domain/model/pedido"

	"gorm.io/gorm"
)

type GetPharmacyBoardQueryHandler struct {
	reader pedidoReader
}

func NewGetPharmacyBoardQueryHandler(db *gorm.DB) GetPharmacyBoardQueryHandler {
	return GetPharmacyBoardQueryHandler{reader: pedidoReader{db: db}}
}

// Handle puts the pharmacy's Pendiente orders in Nuevos and its Confirmado
// or Preparando orders in Preparando.
func (h GetPharmacyBoardQueryHandler) Handle(
	ctx context.Context,
	query GetPharmacyBoardQuery,
) (GetPharmacyBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPharmacyBoardQueryResponse{}, err
	}

	nuevos, err := h.reader.find(ctx,
		"farmacia_id = ? AND status = ?", "created_at, id",
		query.FarmaciaID().Int64(),
		pedido.Pendiente.String(),
	)
	if err != nil {
		return GetPharmacyBoardQueryResponse{}, err
	}

	preparando, err := h.reader.find(ctx,
		"farmacia_id = ? AND status IN ?", "created_at, id",
		query.FarmaciaID().Int64(),
		[]string{pedido.Confirmado.String(), pedido.Preparando.String()},
	)
	if err != nil {
		return GetPharmacyBoardQueryResponse{}, err
	}

	return GetPharmacyBoardQueryResponse{
		Nuevos:     nuevos,
		Preparando: preparando,
	}, nil
}
