package panel

import (
	"context"
	"sync"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
)

// MockCourierSource serves a fixed demo data set and acknowledges every
// action without contacting a server.
type MockCourierSource struct {
	mu        sync.Mutex
	available []Order
	active    []Order
	calls     []string
}

// NewMockCourierSource returns a source preloaded with the demo orders.
func NewMockCourierSource() *MockCourierSource {
	return NewMockCourierSourceWith(demoAvailable(), demoActive())
}

func NewMockCourierSourceWith(available, active []Order) *MockCourierSource {
	return &MockCourierSource{available: available, active: active}
}

func (m *MockCourierSource) Available(context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneOrders(m.available), nil
}

func (m *MockCourierSource) Active(context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneOrders(m.active), nil
}

func (m *MockCourierSource) Accept(_ context.Context, _ OrderID) error {
	m.record("accept")
	return nil
}

func (m *MockCourierSource) Reject(_ context.Context, _ OrderID) error {
	m.record("reject")
	return nil
}

func (m *MockCourierSource) Deliver(_ context.Context, _ OrderID) error {
	m.record("deliver")
	return nil
}

// Calls lists the actions received, in order.
func (m *MockCourierSource) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockCourierSource) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func cloneOrders(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.clone())
	}
	return out
}

func demoAvailable() []Order {
	return []Order{
		{
			ID:                1,
			Numero:            "FD20250121001",
			Status:            pedido.Listo,
			Farmacia:          "Farmacia del Centro",
			FarmaciaDireccion: "Av. Corrientes 1234, CABA",
			Cliente:           "María González",
			DireccionEntrega:  "Av. Santa Fe 5678, CABA",
			Productos:         []string{"Aspirina 500mg", "Paracetamol 500mg"},
			Total:             kernel.MustMoney("270"),
			Ganancia:          kernel.MustMoney("450"),
			Distancia:         "2.3 km",
		},
		{
			ID:                2,
			Numero:            "FD20250121002",
			Status:            pedido.Listo,
			Farmacia:          "Farmacia del Centro",
			FarmaciaDireccion: "Av. Corrientes 1234, CABA",
			Cliente:           "Juan Pérez",
			DireccionEntrega:  "Av. Córdoba 2345, CABA",
			Productos:         []string{"Ibuprofeno 400mg"},
			Total:             kernel.MustMoney("200"),
			Ganancia:          kernel.MustMoney("380"),
			Distancia:         "1.8 km",
		},
		{
			ID:                3,
			Numero:            "FD20250121003",
			Status:            pedido.Listo,
			Farmacia:          "Farmacia del Centro",
			FarmaciaDireccion: "Av. Corrientes 1234, CABA",
			Cliente:           "Ana López",
			DireccionEntrega:  "Av. Rivadavia 3456, CABA",
			Productos:         []string{"Omeprazol 20mg"},
			Total:             kernel.MustMoney("300"),
			Ganancia:          kernel.MustMoney("520"),
			Distancia:         "3.1 km",
		},
	}
}

func demoActive() []Order {
	return []Order{
		{
			ID:                4,
			Numero:            "FD20250121004",
			Status:            pedido.EnCamino,
			Farmacia:          "Farmacia del Centro",
			FarmaciaDireccion: "Av. Corrientes 1234, CABA",
			Cliente:           "Carlos Rodríguez",
			DireccionEntrega:  "Av. Santa Fe 5678, CABA",
			Productos:         []string{"Amoxicilina 500mg"},
			Total:             kernel.MustMoney("250"),
			MetodoPago:        pedido.Efectivo,
			MontoACobrar:      kernel.MustMoney("250"),
		},
	}
}
