package commands_test

import (
	"context"

	"farmadelivery/internal/core/application/usecases/commands"
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/core/domain/model/producto"
	"farmadelivery/internal/core/domain/model/repartidor"
	"farmadelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPedidoRepository struct{ mock.Mock }

func (m *MockPedidoRepository) Add(ctx context.Context, p *pedido.Pedido) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPedidoRepository) Update(ctx context.Context, p *pedido.Pedido) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPedidoRepository) Get(ctx context.Context, id kernel.ID) (*pedido.Pedido, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pedido.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) GetActiveForCourier(ctx context.Context, courierID kernel.ID) ([]*pedido.Pedido, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pedido.Pedido), args.Error(1)
}

type MockProductoRepository struct{ mock.Mock }

func (m *MockProductoRepository) Add(ctx context.Context, p *producto.Producto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductoRepository) Update(ctx context.Context, p *producto.Producto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductoRepository) Get(ctx context.Context, id kernel.ID) (*producto.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*producto.Producto), args.Error(1)
}

type MockUbicacionRepository struct{ mock.Mock }

func (m *MockUbicacionRepository) Save(ctx context.Context, u *repartidor.Ubicacion) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUbicacionRepository) Get(ctx context.Context, courierID kernel.ID) (*repartidor.Ubicacion, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repartidor.Ubicacion), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PedidoRepository() ports.PedidoRepository {
	args := m.Called()
	return args.Get(0).(ports.PedidoRepository)
}

func (m *MockUoW) ProductoRepository() ports.ProductoRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductoRepository)
}

func (m *MockUoW) UbicacionRepository() ports.UbicacionRepository {
	args := m.Called()
	return args.Get(0).(ports.UbicacionRepository)
}

type MockPedidoUoWFactory struct{ mock.Mock }

func (m *MockPedidoUoWFactory) Create() commands.PedidoUoW {
	args := m.Called()
	return args.Get(0).(commands.PedidoUoW)
}

type MockProductoUoWFactory struct{ mock.Mock }

func (m *MockProductoUoWFactory) Create() commands.ProductoUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductoUoW)
}

type MockUbicacionUoWFactory struct{ mock.Mock }

func (m *MockUbicacionUoWFactory) Create() commands.UbicacionUoW {
	args := m.Called()
	return args.Get(0).(commands.UbicacionUoW)
}
