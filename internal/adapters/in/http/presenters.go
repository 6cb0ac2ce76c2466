package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"farmadelivery/internal/core/application/usecases/queries"
	"farmadelivery/internal/generated/servers"
)

//go:embed templates/*.html
var templateFS embed.FS

var detailTemplate = template.Must(template.ParseFS(templateFS, "templates/pedido_detalle.html"))

func renderPedidoDetail(v queries.PedidoView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := detailTemplate.Execute(&buf, v); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func toPedido(v queries.PedidoView) servers.Pedido {
	p := servers.Pedido{
		Id:                v.ID.Int64(),
		Numero:            v.Numero,
		Estado:            v.Status.String(),
		Farmacia:          v.FarmaciaNombre,
		FarmaciaDireccion: v.FarmaciaDireccion,
		Cliente:           v.Cliente,
		DireccionEntrega:  v.DireccionEntrega,
		Productos:         v.Productos(),
		Total:             v.Total.String(),
		Ganancia:          v.Ganancia.String(),
		MetodoPago:        string(v.MetodoPago),
		MontoCobrar:       v.MontoACobrar.String(),
	}
	if v.RequiereReceta() {
		url := v.RecetaURL
		p.RecetaUrl = &url
	}
	if v.DistanciaKm != nil {
		distancia := fmt.Sprintf("%.1f km", *v.DistanciaKm)
		p.Distancia = &distancia
	}
	if !v.CreatedAt.IsZero() {
		createdAt := v.CreatedAt
		p.CreatedAt = &createdAt
	}
	return p
}

func toPedidos(views []queries.PedidoView) []servers.Pedido {
	out := make([]servers.Pedido, 0, len(views))
	for _, v := range views {
		out = append(out, toPedido(v))
	}
	return out
}

func toInventario(r queries.GetInventarioQueryResponse) servers.Inventario {
	out := servers.Inventario{Secciones: make([]servers.InventarioSeccion, 0, len(r.Sections))}
	for _, s := range r.Sections {
		seccion := servers.InventarioSeccion{
			Nivel:     s.Level.String(),
			Titulo:    s.Level.Label(),
			Productos: make([]servers.Producto, 0, len(s.Productos)),
		}
		for _, p := range s.Productos {
			seccion.Productos = append(seccion.Productos, servers.Producto{
				Id:     p.ID.Int64(),
				Nombre: p.Nombre,
				Precio: p.Precio.String(),
				Stock:  p.Stock,
			})
		}
		out.Secciones = append(out.Secciones, seccion)
	}
	return out
}
