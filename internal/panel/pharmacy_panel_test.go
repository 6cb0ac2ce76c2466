package panel_test

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/producto"
	"farmadelivery/internal/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pharmacyFixture struct {
	backend   *MockPharmacyBackend
	confirmer *recordingConfirmer
	recorder  *panel.ViewRecorder
	notifier  *panel.Notifier
	panel     *panel.PharmacyPanel
}

func newPharmacyFixture(t *testing.T) *pharmacyFixture {
	t.Helper()

	f := &pharmacyFixture{
		backend:   new(MockPharmacyBackend),
		confirmer: &recordingConfirmer{answer: true},
		recorder:  panel.NewViewRecorder(),
	}
	f.notifier, _ = newNotifier()
	f.panel = panel.NewPharmacyPanel(f.backend, f.confirmer, f.recorder, f.notifier, discardLogger)

	f.backend.On("Board", mock.Anything).Return(panel.Board{
		Nuevos:     []panel.Order{order(10, "0"), order(11, "0")},
		Preparando: []panel.Order{order(20, "0")},
	}, nil).Once()
	f.backend.On("Inventory", mock.Anything).Return([]panel.Product{
		{ID: 1, Nombre: "Paracetamol 500mg", Precio: kernel.MustMoney("120.50"), Stock: 0},
		{ID: 2, Nombre: "Ibuprofeno 400mg", Precio: kernel.MustMoney("85"), Stock: 3},
		{ID: 3, Nombre: "Aspirina 500mg", Precio: kernel.MustMoney("60"), Stock: 40},
	}, nil).Once()

	require.NoError(t, f.panel.Load(context.Background()))
	return f
}

func (f *pharmacyFixture) lastToast(t *testing.T) panel.Toast {
	t.Helper()
	toasts := f.notifier.Active()
	require.NotEmpty(t, toasts)
	return toasts[len(toasts)-1]
}

func (f *pharmacyFixture) bucket(t *testing.T, b panel.Bucket) panel.BucketView {
	t.Helper()
	v, ok := f.recorder.Bucket(b)
	require.True(t, ok, "bucket %s was never rendered", b)
	return v
}

func TestPharmacyPanel_Load(t *testing.T) {
	f := newPharmacyFixture(t)

	assert.Equal(t, []panel.OrderID{10, 11}, ids(f.bucket(t, panel.Nuevos).Cards))
	assert.Equal(t, []panel.OrderID{20}, ids(f.bucket(t, panel.Preparando).Cards))
	assert.Equal(t, panel.Counters{Nuevos: 2, Preparando: 1, Notificaciones: 2}, f.panel.Counters())

	low, ok := f.recorder.Section(producto.PocoStock)
	require.True(t, ok)
	require.Len(t, low.Products, 1)
	assert.Equal(t, "Ibuprofeno 400mg", low.Products[0].Nombre)
}

func TestPharmacyPanel_Load_BoardFailure(t *testing.T) {
	backend := new(MockPharmacyBackend)
	notifier, _ := newNotifier()
	p := panel.NewPharmacyPanel(backend, panel.AlwaysConfirm, panel.NewViewRecorder(), notifier, discardLogger)
	backend.On("Board", mock.Anything).Return(panel.Board{}, errors.New("connection refused"))

	err := p.Load(context.Background())

	require.Error(t, err)
	require.Len(t, notifier.Active(), 1)
	assert.Equal(t, panel.MsgLoadError, notifier.Active()[0].Message)
	backend.AssertNotCalled(t, "Inventory", mock.Anything)
}

func TestPharmacyPanel_ConfirmRecipe_MovesToPreparando(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("ConfirmRecipe", mock.Anything, panel.OrderID(10)).
		Return(panel.Result{Success: true, Mensaje: "Receta confirmada"}, nil).Once()

	outcome := f.panel.ConfirmRecipe(context.Background(), 10)

	assert.Equal(t, panel.Applied, outcome)
	assert.Equal(t, []string{panel.ConfirmRecipePrompt}, f.confirmer.prompts)
	assert.Equal(t, []panel.OrderID{11}, ids(f.bucket(t, panel.Nuevos).Cards))
	assert.Equal(t, []panel.OrderID{20, 10}, ids(f.bucket(t, panel.Preparando).Cards))
	assert.Equal(t, panel.Counters{Nuevos: 1, Preparando: 2, Notificaciones: 1}, f.panel.Counters())

	toast := f.lastToast(t)
	assert.Equal(t, panel.ToastSuccess, toast.Kind)
	assert.Equal(t, panel.TitleSuccess, toast.Title)
	assert.Equal(t, "Receta confirmada", toast.Message)
	f.backend.AssertExpectations(t)
}

func TestPharmacyPanel_ConfirmRecipe_OnlyFromNuevos(t *testing.T) {
	f := newPharmacyFixture(t)

	outcome := f.panel.ConfirmRecipe(context.Background(), 20)

	assert.Equal(t, panel.Ignored, outcome)
	assert.Empty(t, f.confirmer.prompts)
	f.backend.AssertNotCalled(t, "ConfirmRecipe", mock.Anything, mock.Anything)
}

func TestPharmacyPanel_ConfirmRecipe_BusinessFailure(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("ConfirmRecipe", mock.Anything, panel.OrderID(10)).
		Return(panel.Result{Success: false, Error: "El pedido ya fue confirmado"}, nil).Once()

	outcome := f.panel.ConfirmRecipe(context.Background(), 10)

	assert.Equal(t, panel.Refused, outcome)
	assert.Equal(t, []panel.OrderID{10, 11}, ids(f.panel.Registry().Snapshot(panel.Nuevos)))
	toast := f.lastToast(t)
	assert.Equal(t, panel.ToastError, toast.Kind)
	assert.Equal(t, "El pedido ya fue confirmado", toast.Message)
}

func TestPharmacyPanel_ConfirmRecipe_TransportFailure(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("ConfirmRecipe", mock.Anything, panel.OrderID(10)).
		Return(panel.Result{}, errors.New("unexpected EOF")).Once()

	outcome := f.panel.ConfirmRecipe(context.Background(), 10)

	assert.Equal(t, panel.Failed, outcome)
	assert.Equal(t, []panel.OrderID{10, 11}, ids(f.panel.Registry().Snapshot(panel.Nuevos)))
	assert.Equal(t, panel.MsgGenericError, f.lastToast(t).Message)
}

func TestPharmacyPanel_Declined_SendsNothing(t *testing.T) {
	f := newPharmacyFixture(t)
	f.confirmer.answer = false

	assert.Equal(t, panel.Declined, f.panel.CancelRecipe(context.Background(), 10))
	assert.Equal(t, panel.Declined, f.panel.DispatchToCourier(context.Background(), 20))

	f.backend.AssertNotCalled(t, "CancelRecipe", mock.Anything, mock.Anything)
	f.backend.AssertNotCalled(t, "DispatchToCourier", mock.Anything, mock.Anything)
	assert.Equal(t, 2, f.panel.Registry().Len(panel.Nuevos))
}

func TestPharmacyPanel_CancelRecipe_ClosesModalShowingOrder(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("PedidoDetail", mock.Anything, panel.OrderID(10)).
		Return(template.HTML("<div>pedido 10</div>"), nil).Once()
	f.backend.On("CancelRecipe", mock.Anything, panel.OrderID(10)).
		Return(panel.Result{Success: true, Mensaje: "Pedido cancelado"}, nil).Once()

	f.panel.ShowDetail(context.Background(), 10)
	require.True(t, f.panel.DetailModal().IsShowing(10))

	outcome := f.panel.CancelRecipe(context.Background(), 10)

	assert.Equal(t, panel.Applied, outcome)
	assert.False(t, f.panel.DetailModal().IsOpen())
	assert.Equal(t, []panel.OrderID{11}, ids(f.bucket(t, panel.Nuevos).Cards))
}

func TestPharmacyPanel_CancelRecipe_KeepsModalOfAnotherOrder(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("PedidoDetail", mock.Anything, panel.OrderID(11)).
		Return(template.HTML("<div>pedido 11</div>"), nil).Once()
	f.backend.On("CancelRecipe", mock.Anything, panel.OrderID(10)).
		Return(panel.Result{Success: true, Mensaje: "Pedido cancelado"}, nil).Once()

	f.panel.ShowDetail(context.Background(), 11)
	f.panel.CancelRecipe(context.Background(), 10)

	assert.True(t, f.panel.DetailModal().IsShowing(11))
}

func TestPharmacyPanel_RemovingTransitions(t *testing.T) {
	tests := []struct {
		name   string
		method string
		act    func(*panel.PharmacyPanel, context.Context, panel.OrderID) panel.Outcome
	}{
		{"dispatch to courier", "DispatchToCourier", (*panel.PharmacyPanel).DispatchToCourier},
		{"mark ready for pickup", "MarkReadyForPickup", (*panel.PharmacyPanel).MarkReadyForPickup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPharmacyFixture(t)
			f.backend.On(tt.method, mock.Anything, panel.OrderID(20)).
				Return(panel.Result{Success: true, Mensaje: "ok"}, nil).Once()

			outcome := tt.act(f.panel, context.Background(), 20)

			assert.Equal(t, panel.Applied, outcome)
			view := f.bucket(t, panel.Preparando)
			assert.True(t, view.IsEmpty())
			assert.Equal(t, panel.Preparando.Placeholder(), view.Placeholder)
			f.backend.AssertExpectations(t)
		})
	}
}

func TestPharmacyPanel_MissingOrder_IsSilentNoOp(t *testing.T) {
	f := newPharmacyFixture(t)
	toasts := len(f.notifier.Active())

	assert.Equal(t, panel.Ignored, f.panel.CancelRecipe(context.Background(), 999))
	assert.Equal(t, panel.Ignored, f.panel.MarkReadyForPickup(context.Background(), 999))

	assert.Empty(t, f.confirmer.prompts)
	assert.Len(t, f.notifier.Active(), toasts)
}

func TestPharmacyPanel_UpdateStock_InvalidInputSendsNothing(t *testing.T) {
	for _, raw := range []string{"-1", "abc", "", "3.5"} {
		t.Run(raw, func(t *testing.T) {
			f := newPharmacyFixture(t)

			outcome := f.panel.UpdateStock(context.Background(), 1, raw)

			assert.Equal(t, panel.Invalid, outcome)
			f.backend.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
			toast := f.lastToast(t)
			assert.Equal(t, panel.ToastError, toast.Kind)
			assert.Equal(t, panel.MsgStockInvalid, toast.Message)
		})
	}
}

func TestPharmacyPanel_UpdateStock_MovesProductSection(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("UpdateStock", mock.Anything, panel.ProductID(1), 12).
		Return(panel.Result{Success: true, Mensaje: "Stock actualizado"}, nil).Once()

	outcome := f.panel.UpdateStock(context.Background(), 1, "12")

	assert.Equal(t, panel.Applied, outcome)
	empty, ok := f.recorder.Section(producto.SinStock)
	require.True(t, ok)
	assert.Empty(t, empty.Products)
	assert.Equal(t, panel.InventoryPlaceholder, empty.Placeholder)

	available, ok := f.recorder.Section(producto.Disponible)
	require.True(t, ok)
	require.Len(t, available.Products, 2)
	assert.Equal(t, "Aspirina 500mg", available.Products[0].Nombre)
	assert.Equal(t, "Paracetamol 500mg", available.Products[1].Nombre)
	assert.Equal(t, "Stock actualizado", f.lastToast(t).Message)
}

func TestPharmacyPanel_UpdateStock_TransportFailure(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("UpdateStock", mock.Anything, panel.ProductID(2), 0).
		Return(panel.Result{}, errors.New("timeout")).Once()

	outcome := f.panel.UpdateStock(context.Background(), 2, "0")

	assert.Equal(t, panel.Failed, outcome)
	p, ok := f.panel.Inventory().Find(2)
	require.True(t, ok)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, panel.MsgStockError, f.lastToast(t).Message)
}

func TestPharmacyPanel_ShowDetail_Error(t *testing.T) {
	f := newPharmacyFixture(t)
	f.backend.On("PedidoDetail", mock.Anything, panel.OrderID(10)).
		Return(template.HTML(""), errors.New("502 Bad Gateway")).Once()

	f.panel.ShowDetail(context.Background(), 10)

	content := f.panel.DetailModal().Content()
	assert.Equal(t, panel.ContentError, content.Kind)
	assert.Equal(t, panel.DetailErrorMessage, content.Message)
}

func TestPharmacyPanel_ShowPrescription(t *testing.T) {
	f := newPharmacyFixture(t)

	f.panel.ShowPrescription("https://cdn.example.com/recetas/10.PDF")

	content := f.panel.PrescriptionModal().Content()
	assert.Equal(t, panel.ContentFrame, content.Kind)
	assert.False(t, f.panel.DetailModal().IsOpen())
}
