// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// rhoconnect-demo server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, public endpoint and
	// the seeded demo user.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// RhoConnect holds the location and api token of the sync service.
	RhoConnect RhoConnect `envPrefix:"RHOCONNECT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Endpoint is the public base url of this server. RhoConnect calls back
	// into it, so it is registered as the adapter url at startup.
	// Env: APP_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// SeedLogin and SeedPassword create a demo user accepted by the
	// authenticate endpoint. Empty login disables seeding.
	// Env: APP_SEED_LOGIN, APP_SEED_PASSWORD
	SeedLogin    string `env:"SEED_LOGIN"`
	SeedPassword string `env:"SEED_PASSWORD"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://" and "postgresql://" urls open
	// PostgreSQL, anything else is handed to SQLite
	// (e.g. "file:demo.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// RhoConnect holds the sync service settings.
type RhoConnect struct {
	// URL may embed the api token as "https://token@host".
	// Env: RHOCONNECT_URL
	URL string `env:"URL"`

	// Env: RHOCONNECT_TOKEN
	Token string `env:"TOKEN"`

	// SyncTimeAsInt pushes times as unix seconds instead of RFC 3339.
	// Env: RHOCONNECT_SYNC_TIME_AS_INT
	SyncTimeAsInt *bool `env:"SYNC_TIME_AS_INT"`
}

// Default values applied when no source sets a field.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultDSN             = "file:rhoconnect-demo.db?_foreign_keys=on"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultVersion         = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration
// from environment variables, command-line flags, the JSON file named by
// either of them and the defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
