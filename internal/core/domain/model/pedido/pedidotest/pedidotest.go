// Package pedidotest builds Pedido fixtures for tests of other packages.
package pedidotest

import (
	"fmt"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

// CreatedAt is the creation time of every fixture.
var CreatedAt = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

// Option tweaks the fixture before it is restored.
type Option func(*pedido.RestorePedidoParams)

func WithStatus(s pedido.Status) Option {
	return func(p *pedido.RestorePedidoParams) { p.Status = s }
}

func WithCourier(courierID int64) Option {
	return func(p *pedido.RestorePedidoParams) {
		id := kernel.MustNewID(courierID)
		p.CourierID = &id
	}
}

func WithRejectedBy(courierIDs ...int64) Option {
	return func(p *pedido.RestorePedidoParams) {
		for _, c := range courierIDs {
			p.RechazadoPor = append(p.RechazadoPor, kernel.MustNewID(c))
		}
	}
}

func WithGanancia(amount string) Option {
	return func(p *pedido.RestorePedidoParams) { p.Ganancia = kernel.MustMoney(amount) }
}

func WithMetodoPago(m pedido.MetodoPago) Option {
	return func(p *pedido.RestorePedidoParams) { p.MetodoPago = m }
}

func WithReceta(url string) Option {
	return func(p *pedido.RestorePedidoParams) { p.RecetaURL = url }
}

func WithVersion(v int) Option {
	return func(p *pedido.RestorePedidoParams) { p.Version = v }
}

func WithFarmacia(farmaciaID int64) Option {
	return func(p *pedido.RestorePedidoParams) { p.Farmacia.ID = kernel.MustNewID(farmaciaID) }
}

func WithFarmaciaUbicacion(lat, lng float64) Option {
	return func(p *pedido.RestorePedidoParams) {
		g, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			panic(err)
		}
		p.Farmacia.Ubicacion = &g
	}
}

// Params returns the restore params of a Pendiente cash order of 270.00.
func Params(id int64, opts ...Option) pedido.RestorePedidoParams {
	p := pedido.RestorePedidoParams{
		NewPedidoParams: pedido.NewPedidoParams{
			ID:     kernel.MustNewID(id),
			Numero: fmt.Sprintf("PED-%05d", id),
			Farmacia: pedido.Farmacia{
				ID:        kernel.MustNewID(1),
				Nombre:    "Farmacia Central",
				Direccion: "Av. Corrientes 1234",
			},
			Cliente:          "María González",
			DireccionEntrega: "Av. Santa Fe 2100, CABA",
			Lineas: []pedido.Linea{
				{
					ProductoID:     kernel.MustNewID(10),
					Nombre:         "Ibuprofeno 400mg",
					Cantidad:       2,
					PrecioUnitario: kernel.MustMoney("85.00"),
				},
				{
					ProductoID:     kernel.MustNewID(11),
					Nombre:         "Amoxicilina 500mg",
					Cantidad:       1,
					PrecioUnitario: kernel.MustMoney("100.00"),
				},
			},
			Descuento:  kernel.Zero,
			MetodoPago: pedido.Efectivo,
			Ganancia:   kernel.MustMoney("450.00"),
			CreatedAt:  CreatedAt,
		},
		Status:    pedido.Pendiente,
		UpdatedAt: CreatedAt,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// New restores a fixture and panics on invalid options.
func New(id int64, opts ...Option) *pedido.Pedido {
	p, err := pedido.RestorePedido(Params(id, opts...))
	if err != nil {
		panic(err)
	}
	return p
}
