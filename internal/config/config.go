package config

import (
	"fmt"
	"os"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBSchemaPath string

	SessionSecret string
	Port          string
	CORSOrigins   string
}

// Load reads configuration from the environment, applying defaults for
// everything except the database credential, which has no safe default.
// DATABASE_URL, when set, wins over the discrete DB_* parts.
func Load() *Config {
	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "fitness_admin"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "fitness_admin_db"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBSchemaPath: os.Getenv("DB_SCHEMA_PATH"),

		SessionSecret: getEnv("SESSION_SECRET", "fitness-admin-dev-secret-change-me"),
		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

// StoreConfigured reports whether a database credential is present, either a
// full connection URL or the discrete password. Without one the server starts
// in degraded mode: data endpoints answer a configuration error instead of
// attempting a connection.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != "" || c.DBPassword != ""
}

// DSN builds the lib/pq connection string. A full DATABASE_URL is passed
// through as-is; lib/pq accepts the postgres:// form directly.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
