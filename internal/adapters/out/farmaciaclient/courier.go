package farmaciaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"farmadelivery/internal/generated/servers"
	"farmadelivery/internal/panel"
)

// CourierClient is the panel.CourierOrderSource of one courier. Refusals
// are returned as *panel.BusinessError carrying the server message.
type CourierClient struct {
	c         *client
	courierID int64
}

var _ panel.CourierOrderSource = (*CourierClient)(nil)

func NewCourierClient(baseURL string, courierID int64, timeout time.Duration) (*CourierClient, error) {
	if courierID <= 0 {
		return nil, fmt.Errorf("repartidor id must be positive, got %d", courierID)
	}
	c, err := newClient(baseURL, timeout, fmt.Sprintf("/api/repartidor/%d/pedidos-activos/", courierID))
	if err != nil {
		return nil, err
	}
	return &CourierClient{c: c, courierID: courierID}, nil
}

func (s *CourierClient) Available(ctx context.Context) ([]panel.Order, error) {
	return s.list(ctx, fmt.Sprintf("/api/repartidor/%d/pedidos-disponibles/", s.courierID))
}

func (s *CourierClient) Active(ctx context.Context) ([]panel.Order, error) {
	return s.list(ctx, fmt.Sprintf("/api/repartidor/%d/pedidos-activos/", s.courierID))
}

func (s *CourierClient) Accept(ctx context.Context, id panel.OrderID) error {
	return s.action(ctx, fmt.Sprintf("/repartidor/%d/aceptar/%d/", s.courierID, id))
}

func (s *CourierClient) Reject(ctx context.Context, id panel.OrderID) error {
	return s.action(ctx, fmt.Sprintf("/repartidor/%d/rechazar/%d/", s.courierID, id))
}

func (s *CourierClient) Deliver(ctx context.Context, id panel.OrderID) error {
	return s.action(ctx, fmt.Sprintf("/repartidor/%d/entregar/%d/", s.courierID, id))
}

// UpdateLocation reports the courier's current position, used by the
// server to show the distance to each pharmacy.
func (s *CourierClient) UpdateLocation(ctx context.Context, lat, lng float64) error {
	form := url.Values{
		"latitud":  {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitud": {strconv.FormatFloat(lng, 'f', -1, 64)},
	}
	return s.send(ctx, fmt.Sprintf("/api/repartidor/%d/ubicacion/", s.courierID), form)
}

func (s *CourierClient) list(ctx context.Context, path string) ([]panel.Order, error) {
	var list []servers.Pedido
	if err := s.c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	return toOrders(list)
}

func (s *CourierClient) action(ctx context.Context, path string) error {
	return s.send(ctx, path, nil)
}

func (s *CourierClient) send(ctx context.Context, path string, form url.Values) error {
	r, err := s.c.post(ctx, path, form, nil)
	if err != nil {
		return err
	}
	if !r.Success {
		return &panel.BusinessError{Message: deref(r.Error)}
	}
	return nil
}
