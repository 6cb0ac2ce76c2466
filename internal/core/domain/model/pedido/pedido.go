package pedido

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/errs"
)

var (
	// ErrPedidoIsNotConstructed is returned when a Pedido was not created
	// through NewPedido or RestorePedido.
	ErrPedidoIsNotConstructed = errors.New("Pedido must be created via NewPedido or RestorePedido constructor")

	ErrCourierAlreadyAssigned     = errors.New("pedido already has a courier assigned")
	ErrCourierRejectedPedido      = errors.New("courier rejected this pedido")
	ErrPedidoNotAssignedToCourier = errors.New("pedido is not assigned to this courier")
)

// Farmacia is the pharmacy the order is prepared at, as seen by the order.
type Farmacia struct {
	ID        kernel.ID
	Nombre    string
	Direccion string
	Ubicacion *kernel.GeoPoint
}

// Linea is one product line of an order.
type Linea struct {
	ProductoID     kernel.ID
	Nombre         string
	Cantidad       int
	PrecioUnitario kernel.Money
}

// Subtotal is quantity times unit price.
func (l Linea) Subtotal() kernel.Money {
	return l.PrecioUnitario.Mul(l.Cantidad)
}

func (l Linea) validate() error {
	if strings.TrimSpace(l.Nombre) == "" {
		return errs.NewValueIsRequiredError("linea.nombre")
	}
	if l.Cantidad <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("linea.cantidad", fmt.Errorf("%d is not greater than 0", l.Cantidad))
	}
	return nil
}

// NewPedidoParams carries the data of a freshly placed order.
type NewPedidoParams struct {
	ID               kernel.ID
	Numero           string
	Farmacia         Farmacia
	Cliente          string
	DireccionEntrega string
	Lineas           []Linea
	Descuento        kernel.Money
	MetodoPago       MetodoPago
	Ganancia         kernel.Money
	RecetaURL        string
	Observaciones    string
	CreatedAt        time.Time
}

// RestorePedidoParams carries everything persisted for an order.
type RestorePedidoParams struct {
	NewPedidoParams
	Status       Status
	CourierID    *kernel.ID
	RechazadoPor []kernel.ID
	UpdatedAt    time.Time
	EntregadoAt  *time.Time
	Version      int
}

// Pedido is the order aggregate root. All state changes go through its
// transition methods, each of which records a StatusChanged event.
type Pedido struct {
	id               kernel.ID
	numero           string
	farmacia         Farmacia
	cliente          string
	direccionEntrega string
	lineas           []Linea
	descuento        kernel.Money
	metodoPago       MetodoPago
	ganancia         kernel.Money
	recetaURL        string
	observaciones    string

	status       Status
	courierID    *kernel.ID
	rechazadoPor []kernel.ID

	createdAt   time.Time
	updatedAt   time.Time
	entregadoAt *time.Time
	version     int

	events        []StatusChanged
	isConstructed bool
}

// NewPedido validates the input and returns a Pendiente order.
func NewPedido(p NewPedidoParams) (*Pedido, error) {
	pedido := &Pedido{
		status:        Pendiente,
		createdAt:     p.CreatedAt,
		updatedAt:     p.CreatedAt,
		cliente:       p.Cliente,
		recetaURL:     p.RecetaURL,
		observaciones: p.Observaciones,
		ganancia:      p.Ganancia,
		isConstructed: true,
	}

	if err := errors.Join(
		pedido.setID(p.ID),
		pedido.setNumero(p.Numero),
		pedido.setFarmacia(p.Farmacia),
		pedido.setDireccionEntrega(p.DireccionEntrega),
		pedido.setLineas(p.Lineas),
		pedido.setMetodoPago(p.MetodoPago),
	); err != nil {
		return nil, err
	}

	if err := pedido.setDescuento(p.Descuento); err != nil {
		return nil, err
	}

	return pedido, nil
}

// RestorePedido rebuilds an order from persistence, re-checking the
// consistency between status and courier assignment.
func RestorePedido(p RestorePedidoParams) (*Pedido, error) {
	pedido, err := NewPedido(p.NewPedidoParams)
	if err != nil {
		return nil, err
	}

	if err = p.Status.Validate(); err != nil {
		return nil, err
	}

	assigned := p.CourierID != nil
	if assigned && p.Status != EnCamino && p.Status != Entregado {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", p.Status),
		)
	}
	if !assigned && p.Status == Entregado {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", p.Status),
		)
	}

	pedido.status = p.Status
	pedido.courierID = p.CourierID
	pedido.rechazadoPor = slices.Clone(p.RechazadoPor)
	pedido.updatedAt = p.UpdatedAt
	pedido.entregadoAt = p.EntregadoAt
	pedido.version = p.Version
	return pedido, nil
}

// Validate ensures the Pedido was built by a constructor.
func (p *Pedido) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPedidoIsNotConstructed
	}
	return nil
}

func (p *Pedido) IsEqual(other *Pedido) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Pedido) ID() kernel.ID                 { return p.id }
func (p *Pedido) Numero() string                { return p.numero }
func (p *Pedido) Farmacia() Farmacia            { return p.farmacia }
func (p *Pedido) Cliente() string               { return p.cliente }
func (p *Pedido) DireccionEntrega() string      { return p.direccionEntrega }
func (p *Pedido) Lineas() []Linea               { return slices.Clone(p.lineas) }
func (p *Pedido) Descuento() kernel.Money       { return p.descuento }
func (p *Pedido) MetodoPago() MetodoPago        { return p.metodoPago }
func (p *Pedido) Ganancia() kernel.Money        { return p.ganancia }
func (p *Pedido) RecetaURL() string             { return p.recetaURL }
func (p *Pedido) Observaciones() string         { return p.observaciones }
func (p *Pedido) Status() Status                { return p.status }
func (p *Pedido) Courier() *kernel.ID           { return p.courierID }
func (p *Pedido) RechazadoPor() []kernel.ID     { return slices.Clone(p.rechazadoPor) }
func (p *Pedido) CreatedAt() time.Time          { return p.createdAt }
func (p *Pedido) UpdatedAt() time.Time          { return p.updatedAt }
func (p *Pedido) EntregadoAt() *time.Time       { return p.entregadoAt }
func (p *Pedido) Version() int                  { return p.version }
func (p *Pedido) DomainEvents() []StatusChanged { return slices.Clone(p.events) }

// ClearDomainEvents is called once the events were handed to the outbox.
func (p *Pedido) ClearDomainEvents() {
	p.events = nil
}

// Subtotal is the sum of all line subtotals.
func (p *Pedido) Subtotal() kernel.Money {
	total := kernel.Zero
	for _, l := range p.lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Total is the subtotal minus the discount. NewPedido guarantees it is not negative.
func (p *Pedido) Total() kernel.Money {
	total, _ := p.Subtotal().Sub(p.descuento)
	return total
}

// MontoACobrar is what the courier collects at the door.
func (p *Pedido) MontoACobrar() kernel.Money {
	if p.metodoPago.IsCash() {
		return p.Total()
	}
	return kernel.Zero
}

// RequiereReceta reports whether a prescription document is attached.
func (p *Pedido) RequiereReceta() bool {
	return p.recetaURL != ""
}

// IsNuevo is the pharmacy "new orders" bucket.
func (p *Pedido) IsNuevo() bool {
	return p.status == Pendiente
}

// IsEnPreparacion is the pharmacy "preparing" bucket.
func (p *Pedido) IsEnPreparacion() bool {
	return p.status == Confirmado || p.status == Preparando
}

// IsAvailableFor reports whether the courier may be offered this order.
func (p *Pedido) IsAvailableFor(courierID kernel.ID) bool {
	return p.courierID == nil &&
		p.status.ValidateAccept() == nil &&
		!p.hasRejected(courierID)
}

// IsActiveFor reports whether the courier is currently delivering this order.
func (p *Pedido) IsActiveFor(courierID kernel.ID) bool {
	return p.status == EnCamino && p.courierID != nil && p.courierID.IsEqual(courierID)
}

// ConfirmRecipe accepts the attached prescription and starts preparation.
func (p *Pedido) ConfirmRecipe(at time.Time) error {
	next, err := p.status.ConfirmRecipe()
	if err != nil {
		return err
	}
	p.transition(next, at)
	return nil
}

// CancelRecipe rejects the prescription and cancels the order.
func (p *Pedido) CancelRecipe(at time.Time) error {
	next, err := p.status.Cancel()
	if err != nil {
		return err
	}
	p.transition(next, at)
	return nil
}

// MarkReadyForPickup leaves the order waiting for a courier at the pharmacy.
func (p *Pedido) MarkReadyForPickup(at time.Time) error {
	next, err := p.status.MarkReady()
	if err != nil {
		return err
	}
	p.transition(next, at)
	return nil
}

// DispatchToCourier records that the pharmacy handed the package over.
func (p *Pedido) DispatchToCourier(at time.Time) error {
	next, err := p.status.Dispatch()
	if err != nil {
		return err
	}
	p.transition(next, at)
	return nil
}

// Accept assigns the order to a courier and puts it EnCamino.
func (p *Pedido) Accept(courierID kernel.ID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	next, err := p.status.Accept()
	if err != nil {
		return err
	}
	if p.courierID != nil {
		return ErrCourierAlreadyAssigned
	}
	if p.hasRejected(courierID) {
		return ErrCourierRejectedPedido
	}

	p.courierID = &courierID
	p.transition(next, at)
	return nil
}

// Reject hides an available order from this courier. Rejecting twice is
// a no-op; orders that could not be accepted cannot be rejected either.
func (p *Pedido) Reject(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if p.courierID != nil && p.courierID.IsEqual(courierID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("courier %s cannot reject its own active pedido", courierID),
		)
	}
	if err := p.status.ValidateAccept(); err != nil {
		return err
	}
	if p.courierID != nil {
		return ErrCourierAlreadyAssigned
	}
	if !p.hasRejected(courierID) {
		p.rechazadoPor = append(p.rechazadoPor, courierID)
	}
	return nil
}

// Deliver closes the order; only the assigned courier may do it.
func (p *Pedido) Deliver(courierID kernel.ID, at time.Time) error {
	next, err := p.status.Deliver()
	if err != nil {
		return err
	}
	if p.courierID == nil || !p.courierID.IsEqual(courierID) {
		return ErrPedidoNotAssignedToCourier
	}

	p.entregadoAt = &at
	p.transition(next, at)
	return nil
}

func (p *Pedido) transition(next Status, at time.Time) {
	p.events = append(p.events, newStatusChanged(p, p.status, next, at))
	p.status = next
	p.updatedAt = at
}

func (p *Pedido) hasRejected(courierID kernel.ID) bool {
	return slices.ContainsFunc(p.rechazadoPor, courierID.IsEqual)
}

func (p *Pedido) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pedido) setNumero(numero string) error {
	if strings.TrimSpace(numero) == "" {
		return errs.NewValueIsRequiredError("numero")
	}
	p.numero = numero
	return nil
}

func (p *Pedido) setFarmacia(f Farmacia) error {
	if err := f.ID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(f.Nombre) == "" {
		return errs.NewValueIsRequiredError("farmacia.nombre")
	}
	p.farmacia = f
	return nil
}

func (p *Pedido) setDireccionEntrega(direccion string) error {
	if strings.TrimSpace(direccion) == "" {
		return errs.NewValueIsRequiredError("direccion de entrega")
	}
	p.direccionEntrega = direccion
	return nil
}

func (p *Pedido) setLineas(lineas []Linea) error {
	if len(lineas) == 0 {
		return errs.NewValueIsRequiredError("lineas")
	}
	for _, l := range lineas {
		if err := l.validate(); err != nil {
			return err
		}
	}
	p.lineas = slices.Clone(lineas)
	return nil
}

func (p *Pedido) setMetodoPago(m MetodoPago) error {
	if err := m.Validate(); err != nil {
		return err
	}
	p.metodoPago = m
	return nil
}

func (p *Pedido) setDescuento(descuento kernel.Money) error {
	if descuento.Cmp(p.Subtotal()) > 0 {
		return errs.NewValueIsOutOfRangeError("descuento", descuento.String(), "0", p.Subtotal().String())
	}
	p.descuento = descuento
	return nil
}
