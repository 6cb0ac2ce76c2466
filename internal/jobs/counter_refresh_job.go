package jobs

import (
	"context"
	"log/slog"

	"farmadelivery/internal/panel"

	"github.com/robfig/cron/v3"
)

// DefaultCounterSchedule matches the panel's 30 second badge refresh.
const DefaultCounterSchedule = "@every 30s"

type counterRefresher interface {
	RefreshCounters() panel.Counters
}

// CounterRefreshJob recomputes the pharmacy panel badges from the registry.
type CounterRefreshJob struct {
	panel    counterRefresher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCounterRefreshJob(p counterRefresher, schedule string, logger *slog.Logger) *CounterRefreshJob {
	if schedule == "" {
		schedule = DefaultCounterSchedule
	}
	return &CounterRefreshJob{
		panel:    p,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "counter_refresh_job"),
	}
}

func (j *CounterRefreshJob) Name() string {
	return "counter refresh"
}

func (j *CounterRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Counter refresh job started", "schedule", j.schedule)
	return nil
}

func (j *CounterRefreshJob) Run() {
	c := j.panel.RefreshCounters()
	j.logger.DebugContext(context.Background(), "Counters refreshed",
		"nuevos", c.Nuevos,
		"preparando", c.Preparando,
		"notificaciones", c.Notificaciones,
	)
}

func (j *CounterRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Counter refresh job stopped")
}
