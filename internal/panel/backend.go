package panel

import (
	"context"
	"errors"
	"html/template"
)

// Result is the {success, mensaje|error} body of a mutating endpoint.
type Result struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Board is the content of the two pharmacy buckets.
type Board struct {
	Nuevos     []Order
	Preparando []Order
}

// PharmacyBackend is the server the pharmacy panel talks to. A non-nil
// error means the call itself failed (transport, undecodable body); a
// business refusal comes back as Result{Success: false}.
type PharmacyBackend interface {
	Board(ctx context.Context) (Board, error)
	Inventory(ctx context.Context) ([]Product, error)
	PedidoDetail(ctx context.Context, id OrderID) (template.HTML, error)
	ConfirmRecipe(ctx context.Context, id OrderID) (Result, error)
	CancelRecipe(ctx context.Context, id OrderID) (Result, error)
	DispatchToCourier(ctx context.Context, id OrderID) (Result, error)
	MarkReadyForPickup(ctx context.Context, id OrderID) (Result, error)
	UpdateStock(ctx context.Context, id ProductID, stock int) (Result, error)
}

// CourierOrderSource is where the courier panel reads and acts on orders.
type CourierOrderSource interface {
	Available(ctx context.Context) ([]Order, error)
	Active(ctx context.Context) ([]Order, error)
	Accept(ctx context.Context, id OrderID) error
	Reject(ctx context.Context, id OrderID) error
	Deliver(ctx context.Context, id OrderID) error
}

// BusinessError is a refusal reported by the server, shown to the user
// verbatim. Sources return it instead of a transport error.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func businessMessage(err error) (string, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Message, true
	}
	return "", false
}

// Confirmer asks the user to confirm an action.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// AlwaysConfirm accepts every confirmation.
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })

// Outcome tells what an action ended up doing.
type Outcome int

const (
	// Ignored: the order was not in the panel; nothing happened.
	Ignored Outcome = iota
	// Declined: the user did not confirm; nothing was sent.
	Declined
	// Invalid: input failed validation; nothing was sent.
	Invalid
	// Refused: the request was refused (server or local rule); no mutation.
	Refused
	// Failed: the call failed in transport; no mutation.
	Failed
	// Applied: the request succeeded and the view was updated.
	Applied
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Declined:
		return "declined"
	case Invalid:
		return "invalid"
	case Refused:
		return "refused"
	case Failed:
		return "failed"
	case Applied:
		return "applied"
	default:
		return "unknown"
	}
}
