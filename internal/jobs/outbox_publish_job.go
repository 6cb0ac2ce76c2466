package jobs

import (
	"context"
	"log/slog"

	"farmadelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs the publisher every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

type outboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxPublishJob periodically ships committed order events to Kafka.
type OutboxPublishJob struct {
	handler   outboxPublisher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxPublishJob uses a six-field (with seconds) cron schedule.
func NewOutboxPublishJob(handler outboxPublisher, schedule string, batchSize int, logger *slog.Logger) *OutboxPublishJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultOutboxBatchSize
	}
	return &OutboxPublishJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_publish_job"),
	}
}

func (j *OutboxPublishJob) Name() string {
	return "outbox publish"
}

func (j *OutboxPublishJob) Start() error {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.Run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox publish job started", "schedule", j.schedule)
	return nil
}

// Run executes one publishing pass.
func (j *OutboxPublishJob) Run(ctx context.Context, cmd commands.PublishOutboxCommand) {
	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox publish job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", n)
	}
}

func (j *OutboxPublishJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox publish job stopped")
}
