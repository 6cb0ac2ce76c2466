package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	KafkaHost              string
	KafkaOrderChangedTopic string

	OutboxSchedule  string
	OutboxBatchSize int

	// Panel settings, read by cmd/panel only.
	PanelAPIBaseURL      string
	PanelFarmaciaID      int64
	PanelRepartidorID    int64
	PanelCounterSchedule string
	PanelCourierDemo     bool
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSslMode,
	)
}
