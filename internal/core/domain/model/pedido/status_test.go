package pedido_test

import (
	"testing"

	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		code string
		want pedido.Status
	}{
		{"PENDIENTE", pedido.Pendiente},
		{"CONFIRMADO", pedido.Confirmado},
		{"PREPARANDO", pedido.Preparando},
		{"LISTO", pedido.Listo},
		{"EN_CAMINO", pedido.EnCamino},
		{"ENTREGADO", pedido.Entregado},
		{"CANCELADO", pedido.Cancelado},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := pedido.ParseStatus(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.String())
		})
	}

	_, err := pedido.ParseStatus("en_camino")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	all := []pedido.Status{
		pedido.Pendiente, pedido.Confirmado, pedido.Preparando, pedido.Listo,
		pedido.EnCamino, pedido.Entregado, pedido.Cancelado,
	}

	tests := []struct {
		name    string
		apply   func(pedido.Status) (pedido.Status, error)
		allowed map[pedido.Status]pedido.Status
	}{
		{
			name:    "confirm recipe",
			apply:   pedido.Status.ConfirmRecipe,
			allowed: map[pedido.Status]pedido.Status{pedido.Pendiente: pedido.Preparando},
		},
		{
			name:  "cancel",
			apply: pedido.Status.Cancel,
			allowed: map[pedido.Status]pedido.Status{
				pedido.Pendiente:  pedido.Cancelado,
				pedido.Confirmado: pedido.Cancelado,
				pedido.Preparando: pedido.Cancelado,
			},
		},
		{
			name:  "mark ready",
			apply: pedido.Status.MarkReady,
			allowed: map[pedido.Status]pedido.Status{
				pedido.Confirmado: pedido.Listo,
				pedido.Preparando: pedido.Listo,
			},
		},
		{
			name:  "dispatch",
			apply: pedido.Status.Dispatch,
			allowed: map[pedido.Status]pedido.Status{
				pedido.Preparando: pedido.EnCamino,
				pedido.Listo:      pedido.EnCamino,
			},
		},
		{
			name:  "accept",
			apply: pedido.Status.Accept,
			allowed: map[pedido.Status]pedido.Status{
				pedido.Listo:    pedido.EnCamino,
				pedido.EnCamino: pedido.EnCamino,
			},
		},
		{
			name:    "deliver",
			apply:   pedido.Status.Deliver,
			allowed: map[pedido.Status]pedido.Status{pedido.EnCamino: pedido.Entregado},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range all {
				got, err := tt.apply(from)
				want, ok := tt.allowed[from]
				if ok {
					require.NoError(t, err, from.String())
					assert.Equal(t, want, got)
				} else {
					require.ErrorIs(t, err, errs.ErrValueIsInvalid, from.String())
					assert.Equal(t, pedido.Unknown, got)
				}
			}
		})
	}
}

func TestStatus_FinalStatesAllowNothing(t *testing.T) {
	for _, s := range []pedido.Status{pedido.Entregado, pedido.Cancelado} {
		assert.True(t, s.IsFinal())

		_, err := s.Cancel()
		assert.Error(t, err)
		_, err = s.Dispatch()
		assert.Error(t, err)
		_, err = s.Deliver()
		assert.Error(t, err)
	}
	assert.False(t, pedido.EnCamino.IsFinal())
}

func TestStatus_LabelAndValidate(t *testing.T) {
	assert.Equal(t, "Listo para entrega", pedido.Listo.Label())
	assert.Equal(t, "En Camino", pedido.EnCamino.Label())
	assert.Equal(t, "UNKNOWN", pedido.Unknown.String())

	require.NoError(t, pedido.Preparando.Validate())
	require.Error(t, pedido.Unknown.Validate())
	require.Error(t, pedido.Status(99).Validate())
}

func TestMetodoPago(t *testing.T) {
	require.NoError(t, pedido.Efectivo.Validate())
	require.NoError(t, pedido.MercadoPago.Validate())
	require.ErrorIs(t, pedido.MetodoPago("CHEQUE").Validate(), errs.ErrValueIsInvalid)

	assert.True(t, pedido.Efectivo.IsCash())
	assert.False(t, pedido.TarjetaCredito.IsCash())
	assert.Equal(t, "Tarjeta de Débito", pedido.TarjetaDebito.Label())
}
