package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmadelivery/cmd"
	httpadapter "farmadelivery/internal/adapters/in/http"
	"farmadelivery/internal/adapters/out/kafka"
	"farmadelivery/internal/adapters/out/postgres/outboxrepo"
	"farmadelivery/internal/adapters/out/postgres/pedidorepo"
	"farmadelivery/internal/adapters/out/postgres/productorepo"
	"farmadelivery/internal/adapters/out/postgres/ubicacionrepo"
	"farmadelivery/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.Level()}))
	slog.SetDefault(logger)

	if err = run(configs, logger); err != nil {
		logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDB(configs)
	if err != nil {
		return err
	}

	producer, err := kafka.NewOrderChangedProducer(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	if err != nil {
		return fmt.Errorf("create kafka producer: %w", err)
	}
	defer func() {
		if closeErr := producer.Close(); closeErr != nil {
			logger.Error("Failed to close kafka producer", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(logger, app.CreateOutboxPublishJob(producer))
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newWebServer(&app, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server starting", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = gormDB.AutoMigrate(
		&pedidorepo.PedidoDTO{},
		&pedidorepo.LineaDTO{},
		&productorepo.ProductoDTO{},
		&outboxrepo.OutboxDTO{},
		&ubicacionrepo.UbicacionDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return gormDB, nil
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := httpadapter.NewServer(app.CreateHTTPHandlers(), logger)
	return httpadapter.NewRouter(srv, httpadapter.NewServerMetrics(registry), logger)
}
