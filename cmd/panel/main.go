// Command panel runs the pharmacy and courier panels against a running API
// in the terminal. Actions are typed on stdin and confirmed there too. The
// pharmacy badges refresh on a schedule. When stdin ends the panel keeps
// running as a read-only view until it is stopped.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmadelivery/cmd"
	"farmadelivery/internal/adapters/out/farmaciaclient"
	"farmadelivery/internal/jobs"
	"farmadelivery/internal/panel"

	"github.com/jonboulle/clockwork"
)

const requestTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: configs.Level()}))

	if err = run(configs, logger); err != nil {
		logger.Error("Panel stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := farmaciaclient.NewPharmacyClient(configs.PanelAPIBaseURL, configs.PanelFarmaciaID, requestTimeout)
	if err != nil {
		return err
	}

	var source panel.CourierOrderSource = panel.NewMockCourierSource()
	if !configs.PanelCourierDemo {
		if source, err = farmaciaclient.NewCourierClient(
			configs.PanelAPIBaseURL, configs.PanelRepartidorID, requestTimeout); err != nil {
			return err
		}
	}

	clock := clockwork.NewRealClock()
	renderer := panel.NewTextRenderer(os.Stdout)

	prompt := panel.NewPrompt(os.Stdin, os.Stdout)

	pharmacy := panel.NewPharmacyPanel(backend, prompt, renderer, panel.NewNotifier(clock), logger)
	courier := panel.NewCourierPanel(source, prompt, renderer, panel.NewNotifier(clock), logger)

	if err = pharmacy.Load(ctx); err != nil {
		return err
	}
	if err = courier.Load(ctx); err != nil {
		return err
	}

	jobManager := jobs.NewJobManager(logger, jobs.NewCounterRefreshJob(pharmacy, configs.PanelCounterSchedule, logger))
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	done := make(chan error, 1)
	go func() { done <- panel.NewConsole(prompt, pharmacy, courier).Run(ctx) }()

	select {
	case <-ctx.Done():
		return nil
	case err = <-done:
	}
	if !errors.Is(err, panel.ErrInputClosed) {
		return err
	}

	logger.Info("Panel input closed, showing read-only view until stopped")
	<-ctx.Done()
	return nil
}
