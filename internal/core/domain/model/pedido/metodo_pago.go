package pedido

import (
	"fmt"

	"farmadelivery/internal/pkg/errs"
)

// MetodoPago is how the customer pays. Only cash is collected by the courier.
type MetodoPago string

const (
	Efectivo       MetodoPago = "EFECTIVO"
	TarjetaDebito  MetodoPago = "TARJETA_DEBITO"
	TarjetaCredito MetodoPago = "TARJETA_CREDITO"
	Transferencia  MetodoPago = "TRANSFERENCIA"
	MercadoPago    MetodoPago = "MERCADO_PAGO"
)

var metodoPagoLabels = map[MetodoPago]string{
	Efectivo:       "Efectivo",
	TarjetaDebito:  "Tarjeta de Débito",
	TarjetaCredito: "Tarjeta de Crédito",
	Transferencia:  "Transferencia",
	MercadoPago:    "Mercado Pago",
}

func (m MetodoPago) Validate() error {
	if _, ok := metodoPagoLabels[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("metodo de pago", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

func (m MetodoPago) Label() string {
	if l, ok := metodoPagoLabels[m]; ok {
		return l
	}
	return string(m)
}

// IsCash reports whether the courier has to collect money on delivery.
func (m MetodoPago) IsCash() bool {
	return m == Efectivo
}
