package cmd_test

import (
	"log/slog"
	"testing"

	"farmadelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"HTTP_PORT", "DB_PORT", "DB_SSLMODE", "OUTBOX_BATCH_SIZE", "PANEL_FARMACIA_ID", "PANEL_COURIER_DEMO"} {
		t.Setenv(key, "")
	}

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 0, cfg.OutboxBatchSize)
	assert.Equal(t, int64(1), cfg.PanelFarmaciaID)
	assert.True(t, cfg.PanelCourierDemo)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("DB_USER", "farma")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "farmadelivery")
	t.Setenv("OUTBOX_BATCH_SIZE", "25")
	t.Setenv("PANEL_FARMACIA_ID", "7")
	t.Setenv("PANEL_COURIER_DEMO", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 25, cfg.OutboxBatchSize)
	assert.Equal(t, int64(7), cfg.PanelFarmaciaID)
	assert.False(t, cfg.PanelCourierDemo)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "host=db port=5432 user=farma password=secret dbname=farmadelivery sslmode=disable", cfg.DSN())
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OUTBOX_BATCH_SIZE", "many")

	_, err := cmd.LoadConfig()

	require.ErrorContains(t, err, "OUTBOX_BATCH_SIZE")
}

func TestConfig_Level(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, cmd.Config{LogLevel: raw}.Level(), raw)
	}
}
