// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A .env file in the
working directory is loaded first with 'joho/godotenv'.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, AMQP) via constructors.
  - Optional Backends: Redis, AMQP and the remote author service are enabled
    only when their URL is set.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is read, when present, before the environment is parsed.
// Variables already set in the process environment take precedence.
const dotEnvFile = ".env"

// # Configuration Schema

// Config holds all runtime configuration for the author API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath overrides the embedded schema with a directory of .sql files.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis). Empty disables the author read cache.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Message Broker (RabbitMQ). Empty disables author change events.
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"authors"`

	// Remote author service. Empty disables the gateway routes.
	AuthorService AuthorServiceConfig `envPrefix:"AUTHOR_SERVICE_"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// AuthorServiceConfig describes how to reach the remote author service.
type AuthorServiceConfig struct {
	BaseURL string        `env:"URL"`
	Secret  string        `env:"SECRET"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// ReadMethod is the HTTP method used to fetch a single remote author.
	// The remote contract historically expects POST; GET is accepted once confirmed.
	ReadMethod string `env:"READ_METHOD" envDefault:"POST"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Local development convenience; a missing file is not an error.
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", dotEnvFile, err)
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects combinations the environment parser cannot express.
func (c *Config) validate() error {
	c.AuthorService.ReadMethod = strings.ToUpper(c.AuthorService.ReadMethod)
	switch c.AuthorService.ReadMethod {
	case http.MethodGet, http.MethodPost:
	default:
		return fmt.Errorf("config: AUTHOR_SERVICE_READ_METHOD must be GET or POST, got %q", c.AuthorService.ReadMethod)
	}

	if c.AuthorService.BaseURL != "" {
		parsed, err := url.Parse(c.AuthorService.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: AUTHOR_SERVICE_URL is not an absolute URL: %q", c.AuthorService.BaseURL)
		}
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowsOrigin reports whether a CORS origin is explicitly allowed.
func (c *Config) AllowsOrigin(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}
	return false
}
