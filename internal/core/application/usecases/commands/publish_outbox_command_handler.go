package commands

import (
	"context"
	"fmt"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// PublishOutboxCommandHandler moves committed events to the broker. A batch
// is marked published only after the broker accepted all of it, so a failed
// run is retried whole by the next one (at-least-once delivery).
type PublishOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	clock     clockwork.Clock
}

func NewPublishOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	clock clockwork.Clock,
) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
		clock:     clock,
	}
}

// Handle returns the number of events published.
func (h PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, fmt.Errorf("publish %d outbox messages: %w", len(messages), err)
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = h.outbox.MarkPublished(ctx, ids, h.clock.Now()); err != nil {
		return 0, err
	}

	return len(messages), nil
}
