// Package config loads service configuration from the environment with
// sensible defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime knob of the service.
type Config struct {
	Port              string
	GinMode           string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	PrometheusEnabled bool
	EventQueueSize    int
}

// Load collects configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "sales_db")
	v.SetDefault("PROMETHEUS_ENABLED", false)
	v.SetDefault("EVENT_QUEUE_SIZE", 256)

	return Config{
		Port:              v.GetString("PORT"),
		GinMode:           v.GetString("GIN_MODE"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBName:            v.GetString("DB_NAME"),
		PrometheusEnabled: v.GetBool("PROMETHEUS_ENABLED"),
		EventQueueSize:    v.GetInt("EVENT_QUEUE_SIZE"),
	}
}

// PostgresDSN builds the connection string for the sales database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
