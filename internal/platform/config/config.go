// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, JWT) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Moviebunkers API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	DomainName  string `env:"DOMAIN_NAME"  envDefault:"localhost"`

	// HTTPSEnabled controls cookie Secure attributes and CORS strictness.
	HTTPSEnabled bool `env:"HTTPS_ENABLED" envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// StoreTimeout is the per-request deadline applied to store operations,
	// so a stalled aggregation query cannot hold a request open indefinitely.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`

	// Key-Value Cache (Redis) — one-shot token storage
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret is the symmetric secret for signing access tokens.
	JWTSecret string `env:"JWT_SECRET,required"`

	// JWTTTL is the access token lifetime.
	JWTTTL time.Duration `env:"JWT_TTL" envDefault:"8h"`

	// CORSOrigins is a comma-separated allow-list of origins.
	CORSOrigins string `env:"CORS_ORIGINS"`

	// Outbound mail (password reset). Delivery itself sits behind an
	// interface; these stay unset in development.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the parsed CORS origin allow-list.
func (c *Config) AllowedOrigins() []string {
	if c.CORSOrigins == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		clean := strings.TrimSpace(origin)
		if clean != "" {
			origins = append(origins, clean)
		}
	}
	return origins
}
