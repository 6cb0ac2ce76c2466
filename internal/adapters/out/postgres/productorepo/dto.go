// Package productorepo persists the pharmacy inventory with GORM.
package productorepo

import (
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"

	"github.com/shopspring/decimal"
)

// ProductoDTO is the "productos" row.
type ProductoDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement:false"`
	FarmaciaID int64           `gorm:"index"`
	Nombre     string          `gorm:"size:200"`
	Precio     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Stock      int             `gorm:"check:stock >= 0"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime:false"`
}

func (ProductoDTO) TableName() string {
	return "productos"
}

func fromDomain(p *producto.Producto) ProductoDTO {
	return ProductoDTO{
		ID:         p.ID().Int64(),
		FarmaciaID: p.FarmaciaID().Int64(),
		Nombre:     p.Nombre(),
		Precio:     p.Precio().Decimal(),
		Stock:      p.Stock(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

func toDomain(dto ProductoDTO) (*producto.Producto, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	farmaciaID, err := kernel.NewID(dto.FarmaciaID)
	if err != nil {
		return nil, err
	}

	precio, err := kernel.NewMoney(dto.Precio)
	if err != nil {
		return nil, err
	}

	return producto.RestoreProducto(id, farmaciaID, dto.Nombre, precio, dto.Stock, dto.UpdatedAt)
}
