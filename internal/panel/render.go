package panel

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"farmadelivery/internal/core/domain/model/producto"
)

// BucketView is what a renderer draws for one bucket: either cards or a
// single placeholder, never both.
type BucketView struct {
	Bucket      Bucket
	Cards       []Order
	Placeholder string
}

func (v BucketView) IsEmpty() bool {
	return len(v.Cards) == 0
}

// SectionView is one inventory stock-level section.
type SectionView struct {
	Level       producto.StockLevel
	Products    []Product
	Placeholder string
}

// InventoryPlaceholder is shown in an inventory section without products.
const InventoryPlaceholder = "No hay productos en esta categoría"

type Renderer interface {
	RenderBucket(v BucketView)
	RenderSection(v SectionView)
}

// bucketView applies the bucket's sort policy: Disponibles is sorted by
// descending earnings, ties keep insertion order; the rest keep insertion order.
func bucketView(b Bucket, orders []Order) BucketView {
	if len(orders) == 0 {
		return BucketView{Bucket: b, Placeholder: b.Placeholder()}
	}
	if b == Disponibles {
		slices.SortStableFunc(orders, func(x, y Order) int {
			return y.Ganancia.Cmp(x.Ganancia)
		})
	}
	return BucketView{Bucket: b, Cards: orders}
}

func sectionView(level producto.StockLevel, products []Product) SectionView {
	if len(products) == 0 {
		return SectionView{Level: level, Placeholder: InventoryPlaceholder}
	}
	return SectionView{Level: level, Products: products}
}

// ViewRecorder keeps the last view drawn for every bucket and section.
type ViewRecorder struct {
	mu       sync.Mutex
	buckets  map[Bucket]BucketView
	sections map[producto.StockLevel]SectionView
	renders  int
}

func NewViewRecorder() *ViewRecorder {
	return &ViewRecorder{
		buckets:  make(map[Bucket]BucketView),
		sections: make(map[producto.StockLevel]SectionView),
	}
}

func (r *ViewRecorder) RenderBucket(v BucketView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buckets[v.Bucket] = v
	r.renders++
}

func (r *ViewRecorder) RenderSection(v SectionView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections[v.Level] = v
	r.renders++
}

func (r *ViewRecorder) Bucket(b Bucket) (BucketView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.buckets[b]
	return v, ok
}

func (r *ViewRecorder) Section(level producto.StockLevel) (SectionView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.sections[level]
	return v, ok
}

// Renders counts every draw since creation.
func (r *ViewRecorder) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// TextRenderer prints views as plain text lines.
type TextRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (t *TextRenderer) RenderBucket(v BucketView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "== %s ==\n", v.Bucket)
	if v.IsEmpty() {
		fmt.Fprintf(t.w, "   %s\n", v.Placeholder)
		return
	}
	for _, o := range v.Cards {
		fmt.Fprintf(t.w, " - #%s %s | %s | total %s", o.Numero, o.Cliente, o.DireccionEntrega, o.Total.Format())
		if !o.Ganancia.IsZero() {
			fmt.Fprintf(t.w, " | ganancia %s", o.Ganancia.Format())
		}
		if o.Distancia != "" {
			fmt.Fprintf(t.w, " | %s", o.Distancia)
		}
		fmt.Fprintln(t.w)
	}
}

func (t *TextRenderer) RenderSection(v SectionView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "== inventario: %s ==\n", v.Level.Label())
	if len(v.Products) == 0 {
		fmt.Fprintf(t.w, "   %s\n", v.Placeholder)
		return
	}
	for _, p := range v.Products {
		fmt.Fprintf(t.w, " - %s | stock %d | %s\n", p.Nombre, p.Stock, p.Precio.Format())
	}
}
