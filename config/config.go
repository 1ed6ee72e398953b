// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	TemplateStore TemplateStoreConfig
	Alerts        AlertsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds SQLite configuration.
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// TemplateStoreConfig holds the recurring template file store configuration.
type TemplateStoreConfig struct {
	Path string
}

// AlertsConfig holds notification delivery configuration.
type AlertsConfig struct {
	Enabled       bool
	ResendAPIKey  string
	FromName      string
	FromEmail     string
	ToEmail       string
	WorkerEnabled bool
	PollInterval  time.Duration
	MaxAttempts   int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Path:            getEnv("DATABASE_PATH", "data/pockets.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		TemplateStore: TemplateStoreConfig{
			Path: getEnv("TEMPLATE_STORE_PATH", "data/recurring_templates.json"),
		},
		Alerts: AlertsConfig{
			Enabled:       getEnvAsBool("ALERTS_ENABLED", true),
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "Pockets Tracker"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			ToEmail:       getEnv("ALERTS_TO_EMAIL", ""),
			WorkerEnabled: getEnvAsBool("ALERTS_WORKER_ENABLED", true),
			PollInterval:  getEnvAsDuration("ALERTS_WORKER_POLL_INTERVAL", 30*time.Second),
			MaxAttempts:   getEnvAsInt("ALERTS_WORKER_MAX_ATTEMPTS", 3),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
