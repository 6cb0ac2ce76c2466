// Package queries contains read-side use cases. Handlers read straight from
// the database with raw SQL and return flat views; they never load aggregates.
package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoLineaView is one product line of an order.
type PedidoLineaView struct {
	Nombre         string
	Cantidad       int
	PrecioUnitario kernel.Money
	Subtotal       kernel.Money
}

// PedidoView is the read model shared by the pharmacy board, the courier
// lists and the detail modal.
type PedidoView struct {
	ID                kernel.ID
	Numero            string
	FarmaciaID        kernel.ID
	FarmaciaNombre    string
	FarmaciaDireccion string
	FarmaciaUbicacion *kernel.GeoPoint
	Cliente           string
	DireccionEntrega  string
	Status            pedido.Status
	MetodoPago        pedido.MetodoPago
	Lineas            []PedidoLineaView
	Subtotal          kernel.Money
	Descuento         kernel.Money
	Total             kernel.Money
	MontoACobrar      kernel.Money
	Ganancia          kernel.Money
	RecetaURL         string
	Observaciones     string
	CourierID         *kernel.ID
	CreatedAt         time.Time
	EntregadoAt       *time.Time

	// DistanciaKm is set on courier lists when the courier and the
	// pharmacy positions are both known.
	DistanciaKm *float64
}

// Productos lists the product names, one per line.
func (v PedidoView) Productos() []string {
	names := make([]string, 0, len(v.Lineas))
	for _, l := range v.Lineas {
		names = append(names, l.Nombre)
	}
	return names
}

func (v PedidoView) RequiereReceta() bool {
	return strings.TrimSpace(v.RecetaURL) != ""
}

const pedidoColumns = `
	id,
	numero,
	farmacia_id,
	farmacia_nombre,
	farmacia_direccion,
	farmacia_lat,
	farmacia_lng,
	cliente,
	direccion_entrega,
	status,
	metodo_pago,
	descuento,
	ganancia,
	receta_url,
	observaciones,
	courier_id,
	created_at,
	entregado_at`

// pedidoReader loads PedidoViews with their lines in two round trips.
type pedidoReader struct {
	db *gorm.DB
}

func (r pedidoReader) find(ctx context.Context, where, orderBy string, args ...any) ([]PedidoView, error) {
	views := make([]PedidoView, 0)

	rows, err := r.db.WithContext(ctx).
		Raw("SELECT "+pedidoColumns+" FROM pedidos WHERE "+where+" ORDER BY "+orderBy, args...).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, farmaciaID      int64
			lat, lng            sql.NullFloat64
			courierID           sql.NullInt64
			status, metodoPago  string
			descuento, ganancia decimal.Decimal
			entregadoAt         *time.Time
			v                   PedidoView
		)

		err = rows.Scan(
			&id,
			&v.Numero,
			&farmaciaID,
			&v.FarmaciaNombre,
			&v.FarmaciaDireccion,
			&lat,
			&lng,
			&v.Cliente,
			&v.DireccionEntrega,
			&status,
			&metodoPago,
			&descuento,
			&ganancia,
			&v.RecetaURL,
			&v.Observaciones,
			&courierID,
			&v.CreatedAt,
			&entregadoAt,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		if v.FarmaciaID, err = kernel.NewID(farmaciaID); err != nil {
			return nil, err
		}
		if v.Status, err = pedido.ParseStatus(status); err != nil {
			return nil, err
		}
		v.MetodoPago = pedido.MetodoPago(metodoPago)
		if v.Descuento, err = kernel.NewMoney(descuento); err != nil {
			return nil, err
		}
		if v.Ganancia, err = kernel.NewMoney(ganancia); err != nil {
			return nil, err
		}
		if v.FarmaciaUbicacion, err = geoPointOf(lat, lng); err != nil {
			return nil, err
		}
		if courierID.Valid {
			cid, idErr := kernel.NewID(courierID.Int64)
			if idErr != nil {
				return nil, idErr
			}
			v.CourierID = &cid
		}
		v.EntregadoAt = entregadoAt

		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.attachLineas(ctx, views); err != nil {
		return nil, err
	}

	return views, nil
}

func (r pedidoReader) attachLineas(ctx context.Context, views []PedidoView) error {
	if len(views) == 0 {
		return nil
	}

	index := make(map[int64]int, len(views))
	ids := make([]int64, 0, len(views))
	for i, v := range views {
		index[v.ID.Int64()] = i
		ids = append(ids, v.ID.Int64())
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			pedido_id,
			nombre,
			cantidad,
			precio_unitario
		FROM pedido_lineas
		WHERE pedido_id IN ?
		ORDER BY pedido_id, id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pedidoID int64
			precio   decimal.Decimal
			l        PedidoLineaView
		)
		if err = rows.Scan(&pedidoID, &l.Nombre, &l.Cantidad, &precio); err != nil {
			return err
		}
		if l.PrecioUnitario, err = kernel.NewMoney(precio); err != nil {
			return err
		}
		l.Subtotal = l.PrecioUnitario.Mul(l.Cantidad)

		v := &views[index[pedidoID]]
		v.Lineas = append(v.Lineas, l)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range views {
		views[i].computeTotals()
	}
	return nil
}

func (v *PedidoView) computeTotals() {
	v.Subtotal = kernel.Zero
	for _, l := range v.Lineas {
		v.Subtotal = v.Subtotal.Add(l.Subtotal)
	}

	total, err := v.Subtotal.Sub(v.Descuento)
	if err != nil {
		total = kernel.Zero
	}
	v.Total = total

	v.MontoACobrar = kernel.Zero
	if v.MetodoPago.IsCash() {
		v.MontoACobrar = v.Total
	}
}

// courierPosition returns the last reported position of the courier, or
// nil when it never reported one.
func (r pedidoReader) courierPosition(ctx context.Context, courierID kernel.ID) (*kernel.GeoPoint, error) {
	var (
		lat, lng sql.NullFloat64
		found    bool
	)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT lat, lng
		FROM repartidor_ubicaciones
		WHERE courier_id = ?
	`, courierID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&lat, &lng); err != nil {
			return nil, err
		}
		found = true
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return geoPointOf(lat, lng)
}

// withDistance fills DistanciaKm from the courier's last position.
func (r pedidoReader) withDistance(
	ctx context.Context,
	dispatcher services.CourierDispatcher,
	courierID kernel.ID,
	views []PedidoView,
) ([]PedidoView, error) {
	courierAt, err := r.courierPosition(ctx, courierID)
	if err != nil || courierAt == nil {
		return views, err
	}

	for i := range views {
		if km, ok := dispatcher.Distance(courierAt, views[i].FarmaciaUbicacion); ok {
			views[i].DistanciaKm = &km
		}
	}
	return views, nil
}

func geoPointOf(lat, lng sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lat.Valid || !lng.Valid {
		return nil, nil
	}
	p, err := kernel.NewGeoPoint(lat.Float64, lng.Float64)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
