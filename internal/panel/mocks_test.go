package panel_test

import (
	"context"
	"html/template"
	"log/slog"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/panel"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
)

var now = time.Date(2025, 1, 21, 10, 0, 0, 0, time.UTC)

var discardLogger = slog.New(slog.DiscardHandler)

type MockPharmacyBackend struct {
	mock.Mock
}

func (m *MockPharmacyBackend) Board(ctx context.Context) (panel.Board, error) {
	args := m.Called(ctx)
	return args.Get(0).(panel.Board), args.Error(1)
}

func (m *MockPharmacyBackend) Inventory(ctx context.Context) ([]panel.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]panel.Product), args.Error(1)
}

func (m *MockPharmacyBackend) PedidoDetail(ctx context.Context, id panel.OrderID) (template.HTML, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(template.HTML), args.Error(1)
}

func (m *MockPharmacyBackend) ConfirmRecipe(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(panel.Result), args.Error(1)
}

func (m *MockPharmacyBackend) CancelRecipe(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(panel.Result), args.Error(1)
}

func (m *MockPharmacyBackend) DispatchToCourier(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(panel.Result), args.Error(1)
}

func (m *MockPharmacyBackend) MarkReadyForPickup(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(panel.Result), args.Error(1)
}

func (m *MockPharmacyBackend) UpdateStock(ctx context.Context, id panel.ProductID, stock int) (panel.Result, error) {
	args := m.Called(ctx, id, stock)
	return args.Get(0).(panel.Result), args.Error(1)
}

type MockCourierOrderSource struct {
	mock.Mock
}

func (m *MockCourierOrderSource) Available(ctx context.Context) ([]panel.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]panel.Order), args.Error(1)
}

func (m *MockCourierOrderSource) Active(ctx context.Context) ([]panel.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]panel.Order), args.Error(1)
}

func (m *MockCourierOrderSource) Accept(ctx context.Context, id panel.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCourierOrderSource) Reject(ctx context.Context, id panel.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCourierOrderSource) Deliver(ctx context.Context, id panel.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

func order(id int64, ganancia string) panel.Order {
	return panel.Order{
		ID:       panel.OrderID(id),
		Numero:   "FD" + kernel.MustNewID(id).String(),
		Cliente:  "María González",
		Total:    kernel.MustMoney("270"),
		Ganancia: kernel.MustMoney(ganancia),
	}
}

func ids(orders []panel.Order) []panel.OrderID {
	out := make([]panel.OrderID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func newNotifier() (*panel.Notifier, clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(now)
	return panel.NewNotifier(clock), clock
}

// recordingConfirmer answers with a fixed value and remembers the prompts.
type recordingConfirmer struct {
	answer  bool
	prompts []string
}

func (c *recordingConfirmer) Confirm(message string) bool {
	c.prompts = append(c.prompts, message)
	return c.answer
}
