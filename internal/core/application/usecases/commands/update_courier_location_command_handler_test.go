package commands_test

import (
	"errors"
	"testing"

	"farmadelivery/internal/core/application/usecases/commands"
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/repartidor"
	"farmadelivery/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCourierLocationCommand(t *testing.T) {
	cmd, err := commands.NewUpdateCourierLocationCommand(kernel.MustNewID(7), -34.9205, -57.9536)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.CourierID().Int64())
	assert.InDelta(t, -57.9536, cmd.Punto().Lng(), 1e-9)

	_, err = commands.NewUpdateCourierLocationCommand(kernel.MustNewID(7), 91, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewUpdateCourierLocationCommand(kernel.ID{}, 0, 0)
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestUpdateCourierLocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	repo := new(MockUbicacionRepository)
	uow := new(MockUoW)
	factory := new(MockUbicacionUoWFactory)

	var saved *repartidor.Ubicacion
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UbicacionRepository").Return(repo).Once(),
		repo.On("Save", ctx, mock.AnythingOfType("*repartidor.Ubicacion")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*repartidor.Ubicacion) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewUpdateCourierLocationCommand(kernel.MustNewID(7), -34.9205, -57.9536)
	require.NoError(t, err)

	err = commands.NewUpdateCourierLocationCommandHandler(factory, clockwork.NewFakeClockAt(now)).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(7), saved.CourierID().Int64())
	assert.Equal(t, now, saved.UpdatedAt())
	uow.AssertExpectations(t)
}

func TestUpdateCourierLocationCommandHandler_Handle_Errors(t *testing.T) {
	t.Run("not constructed", func(t *testing.T) {
		factory := new(MockUbicacionUoWFactory)
		err := commands.NewUpdateCourierLocationCommandHandler(factory, clockwork.NewFakeClockAt(now)).
			Handle(t.Context(), commands.UpdateCourierLocationCommand{})
		require.ErrorIs(t, err, commands.ErrUpdateCourierLocationCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("save error", func(t *testing.T) {
		ctx := t.Context()

		repo := new(MockUbicacionRepository)
		uow := new(MockUoW)
		factory := new(MockUbicacionUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UbicacionRepository").Return(repo).Once()
		repo.On("Save", ctx, mock.Anything).Return(errors.New("save error")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, _ := commands.NewUpdateCourierLocationCommand(kernel.MustNewID(7), 0, 0)
		err := commands.NewUpdateCourierLocationCommandHandler(factory, clockwork.NewFakeClockAt(now)).Handle(ctx, cmd)

		require.EqualError(t, err, "save error")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
