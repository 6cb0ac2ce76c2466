package panel

import (
	"context"
	"log/slog"
	"sync"

	"farmadelivery/internal/core/domain/model/producto"
)

// Counters are the badge numbers of the pharmacy panel.
type Counters struct {
	Nuevos         int
	Preparando     int
	Notificaciones int
}

// PharmacyPanel drives the pharmacy board, its inventory tab and its two
// modals (order detail and prescription).
type PharmacyPanel struct {
	backend  PharmacyBackend
	confirm  Confirmer
	renderer Renderer
	notifier *Notifier
	logger   *slog.Logger

	registry     *Registry
	inventory    *Inventory
	detail       *Modal
	prescription *Modal

	mu       sync.Mutex
	counters Counters
}

func NewPharmacyPanel(
	backend PharmacyBackend,
	confirm Confirmer,
	renderer Renderer,
	notifier *Notifier,
	logger *slog.Logger,
) *PharmacyPanel {
	return &PharmacyPanel{
		backend:      backend,
		confirm:      confirm,
		renderer:     renderer,
		notifier:     notifier,
		logger:       logger.With("component", "pharmacy_panel"),
		registry:     NewRegistry(),
		inventory:    NewInventory(),
		detail:       NewModal(),
		prescription: NewModal(),
	}
}

func (p *PharmacyPanel) Registry() *Registry { return p.registry }

func (p *PharmacyPanel) Inventory() *Inventory { return p.inventory }

func (p *PharmacyPanel) DetailModal() *Modal { return p.detail }

func (p *PharmacyPanel) PrescriptionModal() *Modal { return p.prescription }

func (p *PharmacyPanel) Notifier() *Notifier { return p.notifier }

// Counters returns the badges computed by the last RefreshCounters.
func (p *PharmacyPanel) Counters() Counters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counters
}

// Load fills both buckets and the inventory from the backend.
func (p *PharmacyPanel) Load(ctx context.Context) error {
	board, err := p.backend.Board(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to load pharmacy board", "error", err)
		p.notifier.Show(ToastError, TitleError, MsgLoadError)
		return err
	}
	p.registry.Replace(Nuevos, board.Nuevos)
	p.registry.Replace(Preparando, board.Preparando)
	p.render(Nuevos, Preparando)
	p.RefreshCounters()

	products, err := p.backend.Inventory(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to load inventory", "error", err)
		p.notifier.Show(ToastError, TitleError, MsgInventoryError)
		return err
	}
	p.inventory.Replace(products)
	p.renderInventory()
	return nil
}

// ConfirmRecipe moves a new order to Preparando once the server agrees.
func (p *PharmacyPanel) ConfirmRecipe(ctx context.Context, id OrderID) Outcome {
	if _, ok := p.registry.Find(Nuevos, id); !ok {
		return Ignored
	}
	return p.transition(ctx, id, ConfirmRecipePrompt, p.backend.ConfirmRecipe, func() {
		p.registry.Move(id, Nuevos, Preparando)
		p.render(Nuevos, Preparando)
	})
}

// CancelRecipe drops the order from the panel.
func (p *PharmacyPanel) CancelRecipe(ctx context.Context, id OrderID) Outcome {
	return p.removingTransition(ctx, id, CancelRecipePrompt, p.backend.CancelRecipe)
}

// DispatchToCourier drops the order from the panel; a courier has it now.
func (p *PharmacyPanel) DispatchToCourier(ctx context.Context, id OrderID) Outcome {
	return p.removingTransition(ctx, id, DispatchToCourierPrompt, p.backend.DispatchToCourier)
}

// MarkReadyForPickup drops the order from the panel; it waits for a courier.
func (p *PharmacyPanel) MarkReadyForPickup(ctx context.Context, id OrderID) Outcome {
	return p.removingTransition(ctx, id, MarkReadyForPickupPrompt, p.backend.MarkReadyForPickup)
}

func (p *PharmacyPanel) removingTransition(
	ctx context.Context,
	id OrderID,
	prompt string,
	call func(context.Context, OrderID) (Result, error),
) Outcome {
	if !p.owns(id) {
		return Ignored
	}
	return p.transition(ctx, id, prompt, call, func() {
		p.registry.RemoveEverywhere(id)
		p.detail.CloseIfShowing(id)
		p.render(Nuevos, Preparando)
	})
}

func (p *PharmacyPanel) transition(
	ctx context.Context,
	id OrderID,
	prompt string,
	call func(context.Context, OrderID) (Result, error),
	apply func(),
) Outcome {
	if !p.confirm.Confirm(prompt) {
		return Declined
	}

	res, err := call(ctx, id)
	if outcome := p.report(ctx, res, err, MsgGenericError, "pedido_id", id); outcome != Applied {
		return outcome
	}

	apply()
	p.RefreshCounters()
	return Applied
}

// UpdateStock validates raw before sending anything, then moves the product
// to the section of its new level.
func (p *PharmacyPanel) UpdateStock(ctx context.Context, id ProductID, raw string) Outcome {
	stock, err := producto.ParseStock(raw)
	if err != nil {
		p.notifier.Show(ToastError, TitleError, MsgStockInvalid)
		return Invalid
	}

	res, err := p.backend.UpdateStock(ctx, id, stock)
	if outcome := p.report(ctx, res, err, MsgStockError, "producto_id", id); outcome != Applied {
		return outcome
	}

	if p.inventory.SetStock(id, stock) {
		p.renderInventory()
	}
	return Applied
}

// report turns a backend answer into toasts. It returns Applied only for
// a successful Result.
func (p *PharmacyPanel) report(ctx context.Context, res Result, err error, generic string, idKey string, id any) Outcome {
	if err != nil {
		p.logger.ErrorContext(ctx, "Backend request failed", idKey, id, "error", err)
		p.notifier.Show(ToastError, TitleError, generic)
		return Failed
	}
	if !res.Success {
		p.notifier.Show(ToastError, TitleError, res.Error)
		return Refused
	}
	p.notifier.Show(ToastSuccess, TitleSuccess, res.Mensaje)
	return Applied
}

// ShowDetail opens the detail modal in a loading state and fills it with
// the server fragment, or an error body if the fetch fails.
func (p *PharmacyPanel) ShowDetail(ctx context.Context, id OrderID) {
	p.detail.OpenForOrder(id, LoadingContent())

	html, err := p.backend.PedidoDetail(ctx, id)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to load pedido detail", "pedido_id", id, "error", err)
		p.detail.SetContent(id, Content{Kind: ContentError, Message: DetailErrorMessage})
		return
	}
	p.detail.SetContent(id, Content{Kind: ContentHTML, HTML: html})
}

// ShowPrescription opens the prescription viewer for the file.
func (p *PharmacyPanel) ShowPrescription(rawURL string) {
	p.prescription.Open(PrescriptionContent(rawURL))
}

// RefreshCounters recomputes the badges from current bucket membership.
func (p *PharmacyPanel) RefreshCounters() Counters {
	nuevos := p.registry.Len(Nuevos)
	c := Counters{
		Nuevos:         nuevos,
		Preparando:     p.registry.Len(Preparando),
		Notificaciones: nuevos,
	}

	p.mu.Lock()
	p.counters = c
	p.mu.Unlock()
	return c
}

func (p *PharmacyPanel) owns(id OrderID) bool {
	_, inNuevos := p.registry.Find(Nuevos, id)
	_, inPreparando := p.registry.Find(Preparando, id)
	return inNuevos || inPreparando
}

func (p *PharmacyPanel) render(buckets ...Bucket) {
	for _, b := range buckets {
		p.renderer.RenderBucket(bucketView(b, p.registry.Snapshot(b)))
	}
}

func (p *PharmacyPanel) renderInventory() {
	for _, level := range producto.Levels() {
		p.renderer.RenderSection(sectionView(level, p.inventory.Section(level)))
	}
}
