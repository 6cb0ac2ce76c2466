package panel

import (
	"slices"
	"sync"
)

// Bucket is a named list of order cards.
type Bucket int

const (
	Nuevos Bucket = iota + 1
	Preparando
	Disponibles
	Activos
)

var bucketNames = map[Bucket]string{
	Nuevos:      "nuevos",
	Preparando:  "preparando",
	Disponibles: "disponibles",
	Activos:     "activos",
}

var bucketPlaceholders = map[Bucket]string{
	Nuevos:      "No hay pedidos nuevos",
	Preparando:  "No hay pedidos en preparación",
	Disponibles: "No hay pedidos disponibles",
	Activos:     "No tienes pedidos activos",
}

func (b Bucket) String() string {
	if n, ok := bucketNames[b]; ok {
		return n
	}
	return "unknown"
}

// Placeholder is the empty-state text of the bucket.
func (b Bucket) Placeholder() string {
	return bucketPlaceholders[b]
}

// Registry holds the visible orders of each bucket in insertion order.
// Callers only get copies.
type Registry struct {
	mu      sync.RWMutex
	buckets map[Bucket][]Order
}

func NewRegistry() *Registry {
	return &Registry{buckets: make(map[Bucket][]Order)}
}

// Replace swaps the whole content of a bucket. Later duplicates of an ID
// replace earlier ones.
func (r *Registry) Replace(b Bucket, orders []Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buckets[b] = nil
	for _, o := range orders {
		r.add(b, o)
	}
}

// Add appends the order, or replaces it in place if the ID is present.
func (r *Registry) Add(b Bucket, o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(b, o)
}

func (r *Registry) add(b Bucket, o Order) {
	list := r.buckets[b]
	if i := indexOf(list, o.ID); i >= 0 {
		list[i] = o.clone()
		return
	}
	r.buckets[b] = append(list, o.clone())
}

// Remove reports whether the order was in the bucket.
func (r *Registry) Remove(b Bucket, id OrderID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remove(b, id)
}

func (r *Registry) remove(b Bucket, id OrderID) bool {
	list := r.buckets[b]
	i := indexOf(list, id)
	if i < 0 {
		return false
	}
	r.buckets[b] = slices.Delete(list, i, i+1)
	return true
}

// RemoveEverywhere drops the order from every bucket.
func (r *Registry) RemoveEverywhere(id OrderID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := false
	for b := range r.buckets {
		if r.remove(b, id) {
			removed = true
		}
	}
	return removed
}

// Move transfers the order between buckets, appending it to the target.
func (r *Registry) Move(id OrderID, from, to Bucket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.buckets[from], id)
	if i < 0 {
		return false
	}
	o := r.buckets[from][i]
	r.remove(from, id)
	r.add(to, o)
	return true
}

func (r *Registry) Find(b Bucket, id OrderID) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.buckets[b]
	if i := indexOf(list, id); i >= 0 {
		return list[i].clone(), true
	}
	return Order{}, false
}

// Snapshot returns a copy of the bucket in insertion order.
func (r *Registry) Snapshot(b Bucket) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.buckets[b]))
	for _, o := range r.buckets[b] {
		out = append(out, o.clone())
	}
	return out
}

func (r *Registry) Len(b Bucket) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buckets[b])
}

func indexOf(list []Order, id OrderID) int {
	return slices.IndexFunc(list, func(o Order) bool { return o.ID == id })
}
