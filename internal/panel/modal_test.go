package panel_test

import (
	"testing"

	"farmadelivery/internal/panel"

	"github.com/stretchr/testify/assert"
)

func TestPrescriptionContent(t *testing.T) {
	tests := []struct {
		url  string
		kind panel.ContentKind
	}{
		{"/media/recetas/receta.pdf", panel.ContentFrame},
		{"/media/recetas/RECETA.PDF", panel.ContentFrame},
		{"https://cdn.example.com/r/1.pdf?sig=abc", panel.ContentFrame},
		{"/media/recetas/foto.jpg", panel.ContentImage},
		{"/media/recetas/foto.JPEG", panel.ContentImage},
		{"/media/recetas/foto.png", panel.ContentImage},
		{"/media/recetas/foto.gif", panel.ContentImage},
		{"/media/recetas/foto.webp", panel.ContentImage},
		{"/media/recetas/receta.docx", panel.ContentDownload},
		{"/media/recetas/receta", panel.ContentDownload},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c := panel.PrescriptionContent(tt.url)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.url, c.URL)
		})
	}
}

func TestModal_CloseTriggers(t *testing.T) {
	for _, trigger := range []panel.CloseTrigger{panel.CloseButton, panel.BackdropClick, panel.EscapeKey} {
		m := panel.NewModal()
		m.OpenForOrder(7, panel.LoadingContent())

		assert.True(t, m.Handle(trigger))
		assert.False(t, m.IsOpen())
		assert.False(t, m.Handle(trigger), "closing a hidden modal does nothing")
	}
}

func TestModal_ContentClickKeepsItOpen(t *testing.T) {
	m := panel.NewModal()
	m.Open(panel.PrescriptionContent("/r.pdf"))

	assert.False(t, m.Handle(panel.ContentClick))
	assert.True(t, m.IsOpen())
}

func TestModal_SetContent_IgnoresStaleOrder(t *testing.T) {
	m := panel.NewModal()
	m.OpenForOrder(1, panel.LoadingContent())
	m.OpenForOrder(2, panel.LoadingContent())

	m.SetContent(1, panel.Content{Kind: panel.ContentHTML, HTML: "<p>1</p>"})
	assert.Equal(t, panel.ContentLoading, m.Content().Kind)

	m.SetContent(2, panel.Content{Kind: panel.ContentHTML, HTML: "<p>2</p>"})
	assert.Equal(t, panel.ContentHTML, m.Content().Kind)
	assert.True(t, m.IsShowing(2))
	assert.False(t, m.CloseIfShowing(1))
	assert.True(t, m.CloseIfShowing(2))
}
