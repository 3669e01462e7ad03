// Package config builds the process-wide configuration from environment
// variables. It is constructed once in main and passed down explicitly,
// so no other package reads the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds every runtime setting the server needs.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// Env is the deployment environment ("development" enables error
	// detail in 500 responses).
	Env string

	// Database connection settings.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret string

	// JWTExpiration is the token lifetime.
	JWTExpiration time.Duration

	// CORSOrigin is the allowed origin for the browser client.
	CORSOrigin string

	// RunMigrations enables schema automigration at startup.
	RunMigrations bool
}

// ErrMissingJWTSecret is returned when JWT_SECRET is unset; the server
// refuses to start rather than sign tokens with an empty secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads the environment and returns the resulting configuration.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		Env:           getenv("APP_ENV", "production"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "booklog"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: time.Hour,
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:5173"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", v, err)
		}
		cfg.JWTExpiration = d
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Development reports whether the server runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
