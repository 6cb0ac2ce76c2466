package farmaciaclient

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"farmadelivery/internal/generated/servers"
	"farmadelivery/internal/panel"
)

const farmaciaHeaderName = "X-Farmacia-Id"

// PharmacyClient is the panel.PharmacyBackend of one pharmacy.
type PharmacyClient struct {
	c          *client
	farmaciaID int64
}

var _ panel.PharmacyBackend = (*PharmacyClient)(nil)

func NewPharmacyClient(baseURL string, farmaciaID int64, timeout time.Duration) (*PharmacyClient, error) {
	if farmaciaID <= 0 {
		return nil, fmt.Errorf("farmacia id must be positive, got %d", farmaciaID)
	}
	c, err := newClient(baseURL, timeout, boardPath(farmaciaID))
	if err != nil {
		return nil, err
	}
	return &PharmacyClient{c: c, farmaciaID: farmaciaID}, nil
}

func (p *PharmacyClient) Board(ctx context.Context) (panel.Board, error) {
	var board servers.Board
	if err := p.c.getJSON(ctx, boardPath(p.farmaciaID), &board); err != nil {
		return panel.Board{}, err
	}

	nuevos, err := toOrders(board.Nuevos)
	if err != nil {
		return panel.Board{}, err
	}
	preparando, err := toOrders(board.Preparando)
	if err != nil {
		return panel.Board{}, err
	}
	return panel.Board{Nuevos: nuevos, Preparando: preparando}, nil
}

func (p *PharmacyClient) Inventory(ctx context.Context) ([]panel.Product, error) {
	var inv servers.Inventario
	if err := p.c.getJSON(ctx, fmt.Sprintf("/farmacia/%d/inventario/", p.farmaciaID), &inv); err != nil {
		return nil, err
	}
	return toProducts(inv)
}

// PedidoDetail returns the server-rendered fragment of the detail modal.
func (p *PharmacyClient) PedidoDetail(ctx context.Context, id panel.OrderID) (template.HTML, error) {
	body, err := p.c.get(ctx, fmt.Sprintf("/farmacia/pedido/%d/", id))
	if err != nil {
		return "", err
	}
	return template.HTML(body), nil //nolint:gosec // trusted server fragment
}

func (p *PharmacyClient) ConfirmRecipe(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	return p.action(ctx, fmt.Sprintf("/farmacia/pedido/%d/confirmar-receta/", id), nil)
}

func (p *PharmacyClient) CancelRecipe(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	return p.action(ctx, fmt.Sprintf("/farmacia/pedido/%d/cancelar-receta/", id), nil)
}

func (p *PharmacyClient) DispatchToCourier(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	return p.action(ctx, fmt.Sprintf("/farmacia/pedido/%d/entregar-repartidor/", id), nil)
}

func (p *PharmacyClient) MarkReadyForPickup(ctx context.Context, id panel.OrderID) (panel.Result, error) {
	return p.action(ctx, fmt.Sprintf("/farmacia/pedido/%d/listo-retiro/", id), nil)
}

func (p *PharmacyClient) UpdateStock(ctx context.Context, id panel.ProductID, stock int) (panel.Result, error) {
	form := url.Values{"stock": {strconv.Itoa(stock)}}
	return p.action(ctx, fmt.Sprintf("/farmacia/inventario/producto/%d/actualizar-stock/", id), form)
}

// action sends the pharmacy id with every write, so the server refuses
// orders and products of other pharmacies.
func (p *PharmacyClient) action(ctx context.Context, path string, form url.Values) (panel.Result, error) {
	header := http.Header{farmaciaHeaderName: {strconv.FormatInt(p.farmaciaID, 10)}}
	r, err := p.c.post(ctx, path, form, header)
	if err != nil {
		return panel.Result{}, err
	}
	return toResult(r), nil
}

func boardPath(farmaciaID int64) string {
	return fmt.Sprintf("/farmacia/%d/pedidos/", farmaciaID)
}
