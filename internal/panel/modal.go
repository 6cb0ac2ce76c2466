package panel

import (
	"html/template"
	"net/url"
	"path"
	"strings"
	"sync"
)

type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentLoading
	ContentHTML
	ContentError
	ContentOrder
	ContentFrame
	ContentImage
	ContentDownload
)

// Content is what a modal body shows.
type Content struct {
	Kind    ContentKind
	HTML    template.HTML
	Message string
	URL     string
	Order   *Order
}

// Modal messages.
const (
	LoadingMessage     = "Cargando..."
	DetailErrorMessage = "Error al cargar el pedido"
)

func LoadingContent() Content {
	return Content{Kind: ContentLoading, Message: LoadingMessage}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// PrescriptionContent picks the viewer by the extension of the URL path,
// ignoring case, query and fragment: PDFs go in a frame, common images in
// an image, anything else becomes a download link.
func PrescriptionContent(rawURL string) Content {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}

	switch ext := strings.ToLower(path.Ext(p)); {
	case ext == ".pdf":
		return Content{Kind: ContentFrame, URL: rawURL}
	case imageExtensions[ext]:
		return Content{Kind: ContentImage, URL: rawURL}
	default:
		return Content{Kind: ContentDownload, URL: rawURL}
	}
}

// CloseTrigger is a user gesture that may close a modal.
type CloseTrigger int

const (
	// CloseButton is the explicit close control.
	CloseButton CloseTrigger = iota + 1
	// BackdropClick is a click whose target is the backdrop itself.
	BackdropClick
	// ContentClick is a click inside the modal content; it never closes.
	ContentClick
	// EscapeKey is the cancel key.
	EscapeKey
)

// Modal is one modal surface. It remembers which order it shows, if any.
type Modal struct {
	mu      sync.Mutex
	open    bool
	orderID *OrderID
	content Content
}

func NewModal() *Modal {
	return &Modal{}
}

// OpenForOrder shows content that belongs to an order.
func (m *Modal) OpenForOrder(id OrderID, c Content) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.orderID = &id
	m.content = c
}

// Open shows content not tied to an order.
func (m *Modal) Open(c Content) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.orderID = nil
	m.content = c
}

// SetContent replaces the body of an open modal, e.g. after loading.
// It is ignored when the modal was closed or moved to another order meanwhile.
func (m *Modal) SetContent(id OrderID, c Content) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open || m.orderID == nil || *m.orderID != id {
		return
	}
	m.content = c
}

// Close hides the modal and reports whether it was open.
func (m *Modal) Close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := m.open
	m.open = false
	m.orderID = nil
	m.content = Content{}
	return was
}

// CloseIfShowing closes the modal only when it shows the order.
func (m *Modal) CloseIfShowing(id OrderID) bool {
	if !m.IsShowing(id) {
		return false
	}
	return m.Close()
}

// Handle applies a close gesture. Close button, backdrop click and escape
// are equivalent; escape on a hidden modal does nothing.
func (m *Modal) Handle(t CloseTrigger) bool {
	switch t {
	case CloseButton, BackdropClick, EscapeKey:
		return m.Close()
	default:
		return false
	}
}

func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Modal) IsShowing(id OrderID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open && m.orderID != nil && *m.orderID == id
}

func (m *Modal) Content() Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}
