package commands

import (
	"context"

	"farmadelivery/internal/core/domain/model/repartidor"

	"github.com/jonboulle/clockwork"
)

// UpdateCourierLocationCommandHandler replaces the courier's last position.
type UpdateCourierLocationCommandHandler struct {
	uowFactory UbicacionUoWFactory
	clock      clockwork.Clock
}

func NewUpdateCourierLocationCommandHandler(
	uowFactory UbicacionUoWFactory,
	clock clockwork.Clock,
) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ubicacion, err := repartidor.NewUbicacion(cmd.CourierID(), cmd.Punto(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UbicacionRepository().Save(ctx, ubicacion); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
