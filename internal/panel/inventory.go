package panel

import (
	"slices"
	"strings"
	"sync"

	"farmadelivery/internal/core/domain/model/producto"
)

// Inventory holds the products of the pharmacy grouped by stock level.
type Inventory struct {
	mu       sync.RWMutex
	products []Product
}

func NewInventory() *Inventory {
	return &Inventory{}
}

func (i *Inventory) Replace(products []Product) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.products = slices.Clone(products)
}

// SetStock records a confirmed stock value. It reports whether the product
// is known.
func (i *Inventory) SetStock(id ProductID, stock int) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	for k := range i.products {
		if i.products[k].ID == id {
			i.products[k].Stock = stock
			return true
		}
	}
	return false
}

func (i *Inventory) Find(id ProductID) (Product, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, p := range i.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Section lists the products at the given level sorted by name.
func (i *Inventory) Section(level producto.StockLevel) []Product {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range i.products {
		if producto.LevelOf(p.Stock) == level {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b Product) int {
		return strings.Compare(a.Nombre, b.Nombre)
	})
	return out
}
