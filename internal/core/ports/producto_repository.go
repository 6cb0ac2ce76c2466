package ports

import (
	"context"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"
)

// ProductoRepository persists inventory entries.
type ProductoRepository interface {
	Add(ctx context.Context, aggregate *producto.Producto) error
	Update(ctx context.Context, aggregate *producto.Producto) error
	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.ID) (*producto.Producto, error)
}
