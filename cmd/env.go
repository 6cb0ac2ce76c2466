package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadConfig reads the configuration from the environment, after loading
// .env if one exists. Variables already set in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),
		LogLevel:   envOr("LOG_LEVEL", "info"),

		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "pedido.status_changed"),

		OutboxSchedule:       os.Getenv("OUTBOX_SCHEDULE"),
		PanelAPIBaseURL:      envOr("PANEL_API_BASE_URL", "http://localhost:8080"),
		PanelCounterSchedule: os.Getenv("PANEL_COUNTER_SCHEDULE"),
	}

	var err error
	if cfg.OutboxBatchSize, err = envInt("OUTBOX_BATCH_SIZE", 0); err != nil {
		return Config{}, err
	}
	if cfg.PanelFarmaciaID, err = envInt64("PANEL_FARMACIA_ID", 1); err != nil {
		return Config{}, err
	}
	if cfg.PanelRepartidorID, err = envInt64("PANEL_REPARTIDOR_ID", 1); err != nil {
		return Config{}, err
	}
	if cfg.PanelCourierDemo, err = envBool("PANEL_COURIER_DEMO", true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level maps LOG_LEVEL to a slog level; unknown values mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
