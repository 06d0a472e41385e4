// Package config handles loading and validating runtime configuration for the API server.
// Configuration values (database credentials, the JWT signing secret, the listen port)
// are read from environment variables rather than being hardcoded. This follows the
// "12-factor app" methodology: the same binary runs in dev, staging, and production —
// only the environment changes.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process
	// environment. Convenient in development; in production real env vars are used.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port      string // TCP port the HTTP server listens on (e.g. "5000")
	DBHost    string // Database host (DB_HOST)
	DBPort    string // Database port (DB_PORT, defaults to 5432)
	DBUser    string // Database user (DB_USER)
	DBPass    string // Database password (DB_PASS)
	DBName    string // Database name (DB_NAME) — required
	JWTSecret string // HMAC secret for signing login tokens (JWT_SECRET_KEY) — required
	Env       string // "development", "staging", or "production"
}

// Load reads configuration from environment variables and returns a populated Config.
// It first tries to load a .env file for local development; a missing .env is fine.
//
// Load fails hard when a required secret is missing. In particular there is NO
// fallback signing key: starting up with a well-known default secret would let
// anyone forge login tokens, so an unset JWT_SECRET_KEY stops the server instead.
func Load() (*Config, error) {
	// The error is intentionally discarded: in production the real environment
	// variables are already set and no .env file exists.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	env := os.Getenv("ENV")
	if env == "" {
		// Default to "development" so local runs don't accidentally behave like production
		env = "development"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	cfg := &Config{
		Port:      port,
		DBHost:    os.Getenv("DB_HOST"),
		DBPort:    dbPort,
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET_KEY"),
		Env:       env,
	}

	if cfg.DBName == "" {
		return nil, errors.New("DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is required; refusing to start with an empty signing secret")
	}

	return cfg, nil
}

// DSN renders the PostgreSQL connection URL from the individual DB_* settings.
// The URL form is understood by both the GORM postgres driver and golang-migrate,
// so the same string drives queries and migrations.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost, c.DBPort, c.DBName,
	)
}

// Debug reports whether the server runs in development mode. Error responses
// include the underlying error text only when this is true.
func (c *Config) Debug() bool {
	return c.Env == "development"
}
