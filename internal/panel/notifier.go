package panel

import (
	"slices"
	"sync"
	"time"

	"farmadelivery/internal/core/domain/model/kernel"

	"github.com/jonboulle/clockwork"
)

// ToastTTL is how long a toast stays on screen unless dismissed.
const ToastTTL = 5 * time.Second

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
	ToastInfo    ToastKind = "info"
)

type Toast struct {
	ID        kernel.UUID
	Kind      ToastKind
	Title     string
	Message   string
	CreatedAt time.Time
}

// Notifier stacks toasts without limit or deduplication. Each toast
// removes itself ToastTTL after creation.
type Notifier struct {
	clock  clockwork.Clock
	mu     sync.Mutex
	toasts []Toast
}

func NewNotifier(clock clockwork.Clock) *Notifier {
	return &Notifier{clock: clock}
}

func (n *Notifier) Show(kind ToastKind, title, message string) Toast {
	t := Toast{
		ID:        kernel.NewUUID(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: n.clock.Now(),
	}

	n.mu.Lock()
	n.toasts = append(n.toasts, t)
	n.mu.Unlock()

	n.clock.AfterFunc(ToastTTL, func() { n.Dismiss(t.ID) })
	return t
}

// Dismiss removes the toast at once. It reports false when the toast is
// already gone, which is what the expiry timer sees after an early dismissal.
func (n *Notifier) Dismiss(id kernel.UUID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := slices.IndexFunc(n.toasts, func(t Toast) bool { return t.ID.IsEqual(id) })
	if i < 0 {
		return false
	}
	n.toasts = slices.Delete(n.toasts, i, i+1)
	return true
}

// Active lists the visible toasts in creation order.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.toasts)
}
