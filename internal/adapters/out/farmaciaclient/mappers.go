package farmaciaclient

import (
	"fmt"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/generated/servers"
	"farmadelivery/internal/panel"
)

func toOrder(p servers.Pedido) (panel.Order, error) {
	status, err := pedido.ParseStatus(p.Estado)
	if err != nil {
		return panel.Order{}, fmt.Errorf("pedido %d: %w", p.Id, err)
	}

	var total, ganancia, monto kernel.Money
	for _, f := range []struct {
		raw string
		dst *kernel.Money
	}{
		{p.Total, &total},
		{p.Ganancia, &ganancia},
		{p.MontoCobrar, &monto},
	} {
		if *f.dst, err = kernel.MoneyFromString(f.raw); err != nil {
			return panel.Order{}, fmt.Errorf("pedido %d: %w", p.Id, err)
		}
	}

	return panel.Order{
		ID:                panel.OrderID(p.Id),
		Numero:            p.Numero,
		Status:            status,
		Farmacia:          p.Farmacia,
		FarmaciaDireccion: p.FarmaciaDireccion,
		Cliente:           p.Cliente,
		DireccionEntrega:  p.DireccionEntrega,
		Productos:         p.Productos,
		Total:             total,
		Ganancia:          ganancia,
		Distancia:         deref(p.Distancia),
		MetodoPago:        pedido.MetodoPago(p.MetodoPago),
		MontoACobrar:      monto,
		RecetaURL:         deref(p.RecetaUrl),
	}, nil
}

func toOrders(list []servers.Pedido) ([]panel.Order, error) {
	out := make([]panel.Order, 0, len(list))
	for _, p := range list {
		o, err := toOrder(p)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// toProducts flattens the inventory sections; the panel regroups them.
func toProducts(inv servers.Inventario) ([]panel.Product, error) {
	out := make([]panel.Product, 0)
	for _, s := range inv.Secciones {
		for _, p := range s.Productos {
			precio, err := kernel.MoneyFromString(p.Precio)
			if err != nil {
				return nil, fmt.Errorf("producto %d: %w", p.Id, err)
			}
			out = append(out, panel.Product{
				ID:     panel.ProductID(p.Id),
				Nombre: p.Nombre,
				Precio: precio,
				Stock:  p.Stock,
			})
		}
	}
	return out, nil
}

func toResult(r servers.Result) panel.Result {
	return panel.Result{
		Success: r.Success,
		Mensaje: deref(r.Mensaje),
		Error:   deref(r.Error),
	}
}
