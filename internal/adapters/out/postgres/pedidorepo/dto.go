// Package pedidorepo persists pedido aggregates with GORM. A pedido is
// stored as one row in "pedidos" plus its product lines in "pedido_lineas".
package pedidorepo

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PedidoDTO is the "pedidos" row.
type PedidoDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement:false"`
	Numero            string `gorm:"size:20;uniqueIndex"`
	FarmaciaID        int64  `gorm:"index"`
	FarmaciaNombre    string `gorm:"size:200"`
	FarmaciaDireccion string `gorm:"size:300"`
	FarmaciaLat       *float64
	FarmaciaLng       *float64
	Cliente           string          `gorm:"size:200"`
	DireccionEntrega  string          `gorm:"size:300"`
	Descuento         decimal.Decimal `gorm:"type:numeric(10,2)"`
	MetodoPago        string          `gorm:"size:20"`
	Ganancia          decimal.Decimal `gorm:"type:numeric(10,2)"`
	RecetaURL         string
	Observaciones     string
	Status            string        `gorm:"size:20;index"`
	CourierID         *int64        `gorm:"index"`
	RechazadoPor      pq.Int64Array `gorm:"type:bigint[]"`
	CreatedAt         time.Time     `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime:false"`
	EntregadoAt       *time.Time
	Version           int

	Lineas []LineaDTO `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (PedidoDTO) TableName() string {
	return "pedidos"
}

// LineaDTO is one "pedido_lineas" row.
type LineaDTO struct {
	ID             uint  `gorm:"primaryKey"`
	PedidoID       int64 `gorm:"index"`
	ProductoID     int64
	Nombre         string `gorm:"size:200"`
	Cantidad       int
	PrecioUnitario decimal.Decimal `gorm:"type:numeric(10,2)"`
}

func (LineaDTO) TableName() string {
	return "pedido_lineas"
}
