package pedidorepo

import (
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

func fromDomain(p *pedido.Pedido) PedidoDTO {
	f := p.Farmacia()
	dto := PedidoDTO{
		ID:                p.ID().Int64(),
		Numero:            p.Numero(),
		FarmaciaID:        f.ID.Int64(),
		FarmaciaNombre:    f.Nombre,
		FarmaciaDireccion: f.Direccion,
		Cliente:           p.Cliente(),
		DireccionEntrega:  p.DireccionEntrega(),
		Descuento:         p.Descuento().Decimal(),
		MetodoPago:        string(p.MetodoPago()),
		Ganancia:          p.Ganancia().Decimal(),
		RecetaURL:         p.RecetaURL(),
		Observaciones:     p.Observaciones(),
		Status:            p.Status().String(),
		RechazadoPor:      make([]int64, 0, len(p.RechazadoPor())),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
		EntregadoAt:       p.EntregadoAt(),
		Version:           p.Version(),
	}

	if f.Ubicacion != nil {
		lat, lng := f.Ubicacion.Lat(), f.Ubicacion.Lng()
		dto.FarmaciaLat, dto.FarmaciaLng = &lat, &lng
	}

	if c := p.Courier(); c != nil {
		id := c.Int64()
		dto.CourierID = &id
	}

	for _, c := range p.RechazadoPor() {
		dto.RechazadoPor = append(dto.RechazadoPor, c.Int64())
	}

	for _, l := range p.Lineas() {
		dto.Lineas = append(dto.Lineas, LineaDTO{
			PedidoID:       dto.ID,
			ProductoID:     l.ProductoID.Int64(),
			Nombre:         l.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario.Decimal(),
		})
	}

	return dto
}

func toDomain(dto PedidoDTO) (*pedido.Pedido, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	farmaciaID, err := kernel.NewID(dto.FarmaciaID)
	if err != nil {
		return nil, err
	}

	farmacia := pedido.Farmacia{
		ID:        farmaciaID,
		Nombre:    dto.FarmaciaNombre,
		Direccion: dto.FarmaciaDireccion,
	}
	if dto.FarmaciaLat != nil && dto.FarmaciaLng != nil {
		ubicacion, geoErr := kernel.NewGeoPoint(*dto.FarmaciaLat, *dto.FarmaciaLng)
		if geoErr != nil {
			return nil, geoErr
		}
		farmacia.Ubicacion = &ubicacion
	}

	status, err := pedido.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	descuento, err := kernel.NewMoney(dto.Descuento)
	if err != nil {
		return nil, err
	}

	ganancia, err := kernel.NewMoney(dto.Ganancia)
	if err != nil {
		return nil, err
	}

	lineas := make([]pedido.Linea, 0, len(dto.Lineas))
	for _, l := range dto.Lineas {
		productoID, idErr := kernel.NewID(l.ProductoID)
		if idErr != nil {
			return nil, idErr
		}
		precio, moneyErr := kernel.NewMoney(l.PrecioUnitario)
		if moneyErr != nil {
			return nil, moneyErr
		}
		lineas = append(lineas, pedido.Linea{
			ProductoID:     productoID,
			Nombre:         l.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: precio,
		})
	}

	var courierID *kernel.ID
	if dto.CourierID != nil {
		c, idErr := kernel.NewID(*dto.CourierID)
		if idErr != nil {
			return nil, idErr
		}
		courierID = &c
	}

	rechazadoPor := make([]kernel.ID, 0, len(dto.RechazadoPor))
	for _, r := range dto.RechazadoPor {
		c, idErr := kernel.NewID(r)
		if idErr != nil {
			return nil, idErr
		}
		rechazadoPor = append(rechazadoPor, c)
	}

	return pedido.RestorePedido(pedido.RestorePedidoParams{
		NewPedidoParams: pedido.NewPedidoParams{
			ID:               id,
			Numero:           dto.Numero,
			Farmacia:         farmacia,
			Cliente:          dto.Cliente,
			DireccionEntrega: dto.DireccionEntrega,
			Lineas:           lineas,
			Descuento:        descuento,
			MetodoPago:       pedido.MetodoPago(dto.MetodoPago),
			Ganancia:         ganancia,
			RecetaURL:        dto.RecetaURL,
			Observaciones:    dto.Observaciones,
			CreatedAt:        dto.CreatedAt,
		},
		Status:       status,
		CourierID:    courierID,
		RechazadoPor: rechazadoPor,
		UpdatedAt:    dto.UpdatedAt,
		EntregadoAt:  dto.EntregadoAt,
		Version:      dto.Version,
	})
}
