package panel

import (
	"slices"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

// OrderID identifies an order inside a bucket.
type OrderID int64

// Order is the card shown in a bucket.
type Order struct {
	ID                OrderID
	Numero            string
	Status            pedido.Status
	Farmacia          string
	FarmaciaDireccion string
	Cliente           string
	DireccionEntrega  string
	Productos         []string
	Total             kernel.Money
	Ganancia          kernel.Money
	Distancia         string
	MetodoPago        pedido.MetodoPago
	MontoACobrar      kernel.Money
	RecetaURL         string
}

func (o Order) clone() Order {
	o.Productos = slices.Clone(o.Productos)
	return o
}

// asActive is the copy kept in Activos once a courier accepts the order.
func (o Order) asActive() Order {
	active := o.clone()
	active.Status = pedido.EnCamino
	active.MetodoPago = pedido.Efectivo
	active.MontoACobrar = o.Total
	return active
}

// ProductID identifies an inventory product.
type ProductID int64

// Product is one inventory card.
type Product struct {
	ID     ProductID
	Nombre string
	Precio kernel.Money
	Stock  int
}
