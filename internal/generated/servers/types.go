// Package servers holds the HTTP contract of the FarmaDelivery API: wire
// types, the ServerInterface, echo route registration with typed path
// parameters, and the embedded OpenAPI document.
package servers

import "time"

// Result is the body of every action endpoint.
type Result struct {
	Success bool    `json:"success"`
	Mensaje *string `json:"mensaje,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Pedido is an order card.
type Pedido struct {
	Id                int64      `json:"id"`
	Numero            string     `json:"numero"`
	Estado            string     `json:"estado"`
	Farmacia          string     `json:"farmacia"`
	FarmaciaDireccion string     `json:"farmacia_direccion,omitempty"`
	Cliente           string     `json:"cliente"`
	DireccionEntrega  string     `json:"direccion_entrega"`
	Productos         []string   `json:"productos"`
	Total             string     `json:"total"`
	Ganancia          string     `json:"ganancia"`
	MetodoPago        string     `json:"metodo_pago"`
	MontoCobrar       string     `json:"monto_cobrar"`
	RecetaUrl         *string    `json:"receta_url,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	Distancia         *string    `json:"distancia,omitempty"`
}

type Board struct {
	Nuevos     []Pedido `json:"nuevos"`
	Preparando []Pedido `json:"preparando"`
}

type Producto struct {
	Id     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Precio string `json:"precio"`
	Stock  int    `json:"stock"`
}

type InventarioSeccion struct {
	Nivel     string     `json:"nivel"`
	Titulo    string     `json:"titulo"`
	Productos []Producto `json:"productos"`
}

type Inventario struct {
	Secciones []InventarioSeccion `json:"secciones"`
}

// PedidoId is the path parameter of order routes.
type PedidoId = int64

// ProductoId is the path parameter of product routes.
type ProductoId = int64

// RepartidorId is the courier path parameter.
type RepartidorId = int64

// FarmaciaId is the pharmacy path parameter.
type FarmaciaId = int64

// PharmacyActionParams are the header parameters of pharmacy actions.
type PharmacyActionParams struct {
	// XFarmaciaId limits the action to records of this pharmacy.
	XFarmaciaId *FarmaciaId
}
