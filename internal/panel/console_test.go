package panel_test

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"testing"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type consoleFixture struct {
	backend  *MockPharmacyBackend
	source   *MockCourierOrderSource
	out      *bytes.Buffer
	pharmacy *panel.PharmacyPanel
	courier  *panel.CourierPanel
	console  *panel.Console
}

// newConsoleFixture wires both panels to a prompt reading input, so every
// confirmation is answered by the next input line.
func newConsoleFixture(t *testing.T, input string) *consoleFixture {
	t.Helper()
	ctx := context.Background()

	f := &consoleFixture{
		backend: new(MockPharmacyBackend),
		source:  new(MockCourierOrderSource),
		out:     new(bytes.Buffer),
	}
	prompt := panel.NewPrompt(strings.NewReader(input), f.out)

	pharmacyNotifier, _ := newNotifier()
	courierNotifier, _ := newNotifier()
	f.pharmacy = panel.NewPharmacyPanel(f.backend, prompt, panel.NewViewRecorder(), pharmacyNotifier, discardLogger)
	f.courier = panel.NewCourierPanel(f.source, prompt, panel.NewViewRecorder(), courierNotifier, discardLogger)
	f.console = panel.NewConsole(prompt, f.pharmacy, f.courier)

	f.backend.On("Board", mock.Anything).Return(panel.Board{
		Nuevos: []panel.Order{order(10, "0"), order(11, "0")},
	}, nil).Once()
	f.backend.On("Inventory", mock.Anything).Return([]panel.Product{
		{ID: 3, Nombre: "Aspirina 500mg", Precio: kernel.MustMoney("60"), Stock: 40},
	}, nil).Once()
	f.source.On("Available", mock.Anything).Return([]panel.Order{order(1, "450"), order(2, "300")}, nil).Once()
	f.source.On("Active", mock.Anything).Return([]panel.Order{}, nil).Once()

	require.NoError(t, f.pharmacy.Load(ctx))
	require.NoError(t, f.courier.Load(ctx))
	return f
}

func TestConsole_PharmacyCommands(t *testing.T) {
	f := newConsoleFixture(t, "confirmar 10\ns\ncancelar 11\nn\nstock 3 12\nsalir\n")
	f.backend.On("ConfirmRecipe", mock.Anything, panel.OrderID(10)).
		Return(panel.Result{Success: true, Mensaje: "Receta confirmada."}, nil).Once()
	f.backend.On("UpdateStock", mock.Anything, panel.ProductID(3), 12).
		Return(panel.Result{Success: true, Mensaje: "Stock actualizado a 12 unidades."}, nil).Once()

	err := f.console.Run(context.Background())

	require.NoError(t, err)
	f.backend.AssertExpectations(t)
	f.backend.AssertNotCalled(t, "CancelRecipe", mock.Anything, mock.Anything)

	_, ok := f.pharmacy.Registry().Find(panel.Preparando, 10)
	assert.True(t, ok)
	_, ok = f.pharmacy.Registry().Find(panel.Nuevos, 11)
	assert.True(t, ok, "a declined cancel keeps the order")
	p, ok := f.pharmacy.Inventory().Find(3)
	require.True(t, ok)
	assert.Equal(t, 12, p.Stock)

	out := f.out.String()
	assert.Contains(t, out, panel.ConfirmRecipePrompt+" [s/N]: ")
	assert.Contains(t, out, panel.CancelRecipePrompt+" [s/N]: ")
	assert.Contains(t, out, "[success] Éxito: Receta confirmada.")
	assert.Contains(t, out, "(declined)")
	assert.Contains(t, out, "[success] Éxito: Stock actualizado a 12 unidades.")
}

func TestConsole_CourierCommands(t *testing.T) {
	f := newConsoleFixture(t, "aceptar 1\nentregar 1\nsi\nrechazar 2\n")
	f.source.On("Accept", mock.Anything, panel.OrderID(1)).Return(nil).Once()
	f.source.On("Deliver", mock.Anything, panel.OrderID(1)).Return(nil).Once()
	f.source.On("Reject", mock.Anything, panel.OrderID(2)).Return(nil).Once()

	err := f.console.Run(context.Background())

	require.ErrorIs(t, err, panel.ErrInputClosed)
	f.source.AssertExpectations(t)
	assert.Zero(t, f.courier.Registry().Len(panel.Activos))
	assert.Zero(t, f.courier.Registry().Len(panel.Disponibles))
	assert.Contains(t, f.out.String(), "[success] Pedido Aceptado: Pedido #FD1 aceptado exitosamente")
	assert.Contains(t, f.out.String(), "[info] Pedido Rechazado: Pedido #FD2 rechazado")
}

func TestConsole_EndOfInputDeclinesConfirmation(t *testing.T) {
	f := newConsoleFixture(t, "confirmar 10\n")

	err := f.console.Run(context.Background())

	require.ErrorIs(t, err, panel.ErrInputClosed)
	f.backend.AssertNotCalled(t, "ConfirmRecipe", mock.Anything, mock.Anything)
	_, ok := f.pharmacy.Registry().Find(panel.Nuevos, 10)
	assert.True(t, ok)
}

func TestConsole_InvalidCommands(t *testing.T) {
	f := newConsoleFixture(t, "confirmar\nconfirmar abc\nstock 3\nvolar 1\n\nsalir\n")

	err := f.console.Run(context.Background())

	require.NoError(t, err)
	out := f.out.String()
	assert.Contains(t, out, "Uso: confirmar <pedido>")
	assert.Contains(t, out, "Uso: stock <producto> <valor>")
	assert.Contains(t, out, "Comando desconocido: volar. Escribe ayuda.")
	f.backend.AssertNotCalled(t, "ConfirmRecipe", mock.Anything, mock.Anything)
	f.backend.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsole_Detail(t *testing.T) {
	f := newConsoleFixture(t, "detalle 10\nsalir\n")
	f.backend.On("PedidoDetail", mock.Anything, panel.OrderID(10)).
		Return(template.HTML(`<div class="pedido-detalle">Pedido #FD10</div>`), nil).Once()

	require.NoError(t, f.console.Run(context.Background()))

	assert.Contains(t, f.out.String(), `<div class="pedido-detalle">Pedido #FD10</div>`)
	assert.False(t, f.pharmacy.DetailModal().IsOpen())
}

func TestConsole_StopsWhenContextIsDone(t *testing.T) {
	f := newConsoleFixture(t, "ayuda\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, f.console.Run(ctx))
}

func TestPrompt_Confirm(t *testing.T) {
	for answer, want := range map[string]bool{
		"s":   true,
		"Sí":  true,
		"si":  true,
		"y":   true,
		"YES": true,
		"n":   false,
		"no":  false,
		"":    false,
		"ok":  false,
	} {
		t.Run(answer, func(t *testing.T) {
			var out bytes.Buffer
			prompt := panel.NewPrompt(strings.NewReader(answer+"\n"), &out)

			assert.Equal(t, want, prompt.Confirm("¿Seguro?"))
			assert.Equal(t, "¿Seguro? [s/N]: ", out.String())
		})
	}
}
