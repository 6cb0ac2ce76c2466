package producto

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/errs"
)

var ErrProductoIsNotConstructed = errors.New("Producto must be created via NewProducto or RestoreProducto constructor")

// Producto is a product in a pharmacy's inventory.
type Producto struct {
	id         kernel.ID
	farmaciaID kernel.ID
	nombre     string
	precio     kernel.Money
	stock      int
	updatedAt  time.Time

	isConstructed bool
}

// NewProducto validates every field.
func NewProducto(id, farmaciaID kernel.ID, nombre string, precio kernel.Money, stock int) (*Producto, error) {
	p := &Producto{isConstructed: true, precio: precio}

	if err := errors.Join(
		id.Validate(),
		farmaciaID.Validate(),
		validateNombre(nombre),
		ValidateStock(stock),
	); err != nil {
		return nil, err
	}

	p.id = id
	p.farmaciaID = farmaciaID
	p.nombre = nombre
	p.stock = stock
	return p, nil
}

// RestoreProducto rebuilds a product from persistence.
func RestoreProducto(
	id, farmaciaID kernel.ID,
	nombre string,
	precio kernel.Money,
	stock int,
	updatedAt time.Time,
) (*Producto, error) {
	p, err := NewProducto(id, farmaciaID, nombre, precio, stock)
	if err != nil {
		return nil, err
	}
	p.updatedAt = updatedAt
	return p, nil
}

func (p *Producto) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductoIsNotConstructed
	}
	return nil
}

func (p *Producto) ID() kernel.ID         { return p.id }
func (p *Producto) FarmaciaID() kernel.ID { return p.farmaciaID }
func (p *Producto) Nombre() string        { return p.nombre }
func (p *Producto) Precio() kernel.Money  { return p.precio }
func (p *Producto) Stock() int            { return p.stock }
func (p *Producto) UpdatedAt() time.Time  { return p.updatedAt }
func (p *Producto) Level() StockLevel     { return LevelOf(p.stock) }

// UpdateStock overwrites the quantity on hand.
func (p *Producto) UpdateStock(stock int, at time.Time) error {
	if err := ValidateStock(stock); err != nil {
		return err
	}
	p.stock = stock
	p.updatedAt = at
	return nil
}

// ValidateStock rejects negative quantities.
func ValidateStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, math.MaxInt32)
	}
	return nil
}

// ParseStock reads a stock value typed by a user. Only base-10 integers
// are accepted: "3.5", "1e3", "" and " 4" all fail.
func ParseStock(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("stock", err)
	}
	if err = ValidateStock(v); err != nil {
		return 0, err
	}
	return v, nil
}

func validateNombre(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	if len(nombre) > 200 {
		return errs.NewValueIsInvalidErrorWithCause("nombre", fmt.Errorf("%d characters is longer than 200", len(nombre)))
	}
	return nil
}
