package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmadelivery/internal/core/application/usecases/commands"
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/ports"
	"farmadelivery/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

func TestNewPublishOutboxCommand(t *testing.T) {
	cmd, err := commands.NewPublishOutboxCommand(commands.DefaultOutboxBatchSize)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 100, cmd.BatchSize())

	_, err = commands.NewPublishOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.ErrorIs(t, commands.PublishOutboxCommand{}.Validate(), commands.ErrPublishOutboxCommandIsNotConstructed)
}

func TestPublishOutboxCommandHandler(t *testing.T) {
	cmd, err := commands.NewPublishOutboxCommand(10)
	require.NoError(t, err)

	messages := []ports.OutboxMessage{
		{ID: kernel.NewUUID(), EventName: "pedido.status_changed", AggregateID: "1"},
		{ID: kernel.NewUUID(), EventName: "pedido.status_changed", AggregateID: "2"},
	}

	t.Run("publishes and marks the batch", func(t *testing.T) {
		outbox := new(MockOutboxRepository)
		publisher := new(MockEventPublisher)
		clock := clockwork.NewFakeClockAt(now)

		mock.InOrder(
			outbox.On("GetUnpublished", mock.Anything, 10).Return(messages, nil).Once(),
			publisher.On("Publish", mock.Anything, messages).Return(nil).Once(),
			outbox.On("MarkPublished", mock.Anything, []kernel.UUID{messages[0].ID, messages[1].ID}, now).
				Return(nil).Once(),
		)

		n, err := commands.NewPublishOutboxCommandHandler(outbox, publisher, clock).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		outbox.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("nothing pending", func(t *testing.T) {
		outbox := new(MockOutboxRepository)
		publisher := new(MockEventPublisher)
		outbox.On("GetUnpublished", mock.Anything, 10).Return([]ports.OutboxMessage{}, nil).Once()

		n, err := commands.NewPublishOutboxCommandHandler(outbox, publisher, clockwork.NewFakeClockAt(now)).
			Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, n)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("broker failure leaves the batch pending", func(t *testing.T) {
		boom := errors.New("broker unavailable")
		outbox := new(MockOutboxRepository)
		publisher := new(MockEventPublisher)
		outbox.On("GetUnpublished", mock.Anything, 10).Return(messages, nil).Once()
		publisher.On("Publish", mock.Anything, messages).Return(boom).Once()

		n, err := commands.NewPublishOutboxCommandHandler(outbox, publisher, clockwork.NewFakeClockAt(now)).
			Handle(t.Context(), cmd)

		require.ErrorIs(t, err, boom)
		assert.Zero(t, n)
		outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
	})
}
