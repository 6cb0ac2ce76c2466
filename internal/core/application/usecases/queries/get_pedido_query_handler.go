package queries

import (
	"context"

	"farmadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPedidoQueryHandler struct {
	reader pedidoReader
}

func NewGetPedidoQueryHandler(db *gorm.DB) GetPedidoQueryHandler {
	return GetPedidoQueryHandler{reader: pedidoReader{db: db}}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h GetPedidoQueryHandler) Handle(ctx context.Context, query GetPedidoQuery) (PedidoView, error) {
	if err := query.Validate(); err != nil {
		return PedidoView{}, err
	}

	views, err := h.reader.find(ctx, "id = ?", "id", query.PedidoID().Int64())
	if err != nil {
		return PedidoView{}, err
	}
	if len(views) == 0 {
		return PedidoView{}, errs.NewObjectNotFoundError("pedido", query.PedidoID().Int64())
	}

	return views[0], nil
}
