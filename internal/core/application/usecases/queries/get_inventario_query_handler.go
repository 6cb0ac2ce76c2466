package queries

import (
	"context"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetInventarioQueryHandler struct {
	db *gorm.DB
}

func NewGetInventarioQueryHandler(db *gorm.DB) GetInventarioQueryHandler {
	return GetInventarioQueryHandler{db: db}
}

func (h GetInventarioQueryHandler) Handle(
	ctx context.Context,
	query GetInventarioQuery,
) (GetInventarioQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventarioQueryResponse{}, err
	}

	levels := producto.Levels()
	response := GetInventarioQueryResponse{Sections: make([]InventarioSection, 0, len(levels))}
	byLevel := make(map[producto.StockLevel]int, len(levels))
	for i, level := range levels {
		byLevel[level] = i
		response.Sections = append(response.Sections, InventarioSection{
			Level:     level,
			Productos: make([]ProductoView, 0),
		})
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			nombre,
			precio,
			stock
		FROM productos
		WHERE farmacia_id = ?
		ORDER BY nombre, id
	`, query.FarmaciaID().Int64()).Rows()
	if err != nil {
		return GetInventarioQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     int64
			precio decimal.Decimal
			p      ProductoView
		)
		if err = rows.Scan(&id, &p.Nombre, &precio, &p.Stock); err != nil {
			return GetInventarioQueryResponse{}, err
		}
		if p.ID, err = kernel.NewID(id); err != nil {
			return GetInventarioQueryResponse{}, err
		}
		if p.Precio, err = kernel.NewMoney(precio); err != nil {
			return GetInventarioQueryResponse{}, err
		}
		p.Level = producto.LevelOf(p.Stock)

		s := &response.Sections[byLevel[p.Level]]
		s.Productos = append(s.Productos, p)
	}
	if err = rows.Err(); err != nil {
		return GetInventarioQueryResponse{}, err
	}

	return response, nil
}
