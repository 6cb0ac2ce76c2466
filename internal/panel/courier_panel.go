package panel

import (
	"context"
	"fmt"
	"log/slog"
)

// CourierPanel drives the available and active lists of a courier. A
// courier carries at most one active order.
type CourierPanel struct {
	source   CourierOrderSource
	confirm  Confirmer
	renderer Renderer
	notifier *Notifier
	logger   *slog.Logger

	registry *Registry
	detail   *Modal
}

func NewCourierPanel(
	source CourierOrderSource,
	confirm Confirmer,
	renderer Renderer,
	notifier *Notifier,
	logger *slog.Logger,
) *CourierPanel {
	return &CourierPanel{
		source:   source,
		confirm:  confirm,
		renderer: renderer,
		notifier: notifier,
		logger:   logger.With("component", "courier_panel"),
		registry: NewRegistry(),
		detail:   NewModal(),
	}
}

func (c *CourierPanel) Registry() *Registry { return c.registry }

func (c *CourierPanel) DetailModal() *Modal { return c.detail }

func (c *CourierPanel) Notifier() *Notifier { return c.notifier }

// Load reads both lists from the source and renders them.
func (c *CourierPanel) Load(ctx context.Context) error {
	available, err := c.source.Available(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load available pedidos", "error", err)
		c.notifier.Show(ToastError, TitleError, MsgLoadError)
		return err
	}
	active, err := c.source.Active(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load active pedidos", "error", err)
		c.notifier.Show(ToastError, TitleError, MsgLoadError)
		return err
	}

	c.registry.Replace(Disponibles, available)
	c.registry.Replace(Activos, active)
	c.render(Disponibles, Activos)
	return nil
}

// AcceptOrder takes an available order. While another order is active the
// request is refused before reaching the source.
func (c *CourierPanel) AcceptOrder(ctx context.Context, id OrderID) Outcome {
	o, ok := c.registry.Find(Disponibles, id)
	if !ok {
		return Ignored
	}
	if c.registry.Len(Activos) > 0 {
		c.notifier.Show(ToastError, TitleActiveOrder, MsgActiveOrder)
		return Refused
	}

	if outcome := c.call(ctx, id, c.source.Accept); outcome != Applied {
		return outcome
	}

	c.registry.Remove(Disponibles, id)
	c.registry.Add(Activos, o.asActive())
	c.detail.Close()
	c.render(Disponibles, Activos)
	c.notifier.Show(ToastSuccess, TitleAccepted, fmt.Sprintf(msgAcceptedFormat, o.Numero))
	return Applied
}

// RejectOrder drops an available order.
func (c *CourierPanel) RejectOrder(ctx context.Context, id OrderID) Outcome {
	o, ok := c.registry.Find(Disponibles, id)
	if !ok {
		return Ignored
	}

	if outcome := c.call(ctx, id, c.source.Reject); outcome != Applied {
		return outcome
	}

	c.registry.Remove(Disponibles, id)
	c.detail.CloseIfShowing(id)
	c.render(Disponibles)
	c.notifier.Show(ToastInfo, TitleRejected, fmt.Sprintf(msgRejectedFormat, o.Numero))
	return Applied
}

// ConfirmDelivery closes the active order after the courier confirms.
func (c *CourierPanel) ConfirmDelivery(ctx context.Context, id OrderID) Outcome {
	o, ok := c.registry.Find(Activos, id)
	if !ok {
		return Ignored
	}
	if !c.confirm.Confirm(fmt.Sprintf(confirmDeliveryText, o.Numero)) {
		return Declined
	}

	if outcome := c.call(ctx, id, c.source.Deliver); outcome != Applied {
		return outcome
	}

	c.registry.Remove(Activos, id)
	c.detail.CloseIfShowing(id)
	c.render(Activos)
	c.notifier.Show(ToastSuccess, TitleDelivered, fmt.Sprintf(msgDeliveredFormat, o.Numero))
	return Applied
}

// ShowDetail opens the detail modal with the card data. Unknown orders are
// ignored.
func (c *CourierPanel) ShowDetail(id OrderID) bool {
	o, ok := c.registry.Find(Disponibles, id)
	if !ok {
		o, ok = c.registry.Find(Activos, id)
	}
	if !ok {
		return false
	}
	c.detail.OpenForOrder(id, Content{Kind: ContentOrder, Order: &o})
	return true
}

func (c *CourierPanel) call(ctx context.Context, id OrderID, fn func(context.Context, OrderID) error) Outcome {
	err := fn(ctx, id)
	if err == nil {
		return Applied
	}
	if msg, ok := businessMessage(err); ok {
		c.notifier.Show(ToastError, TitleError, msg)
		return Refused
	}
	c.logger.ErrorContext(ctx, "Courier request failed", "pedido_id", id, "error", err)
	c.notifier.Show(ToastError, TitleError, MsgGenericError)
	return Failed
}

func (c *CourierPanel) render(buckets ...Bucket) {
	for _, b := range buckets {
		c.renderer.RenderBucket(bucketView(b, c.registry.Snapshot(b)))
	}
}
