// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/rhoconnect-go/models"
)

// AuthenticateFunc validates credentials posted to the authenticate
// endpoint. A false result answers 401.
type AuthenticateFunc func(ctx context.Context, credentials models.Credentials) bool

// Config is the adapter configuration.
type Config struct {
	// URI is the base uri of the remote RhoConnect service
	// (e.g. "http://rhoconnect.example.com"). An embedded user
	// ("http://token@host") is extracted into Token during resolution.
	URI string

	// Token is the RhoConnect api token.
	Token string

	// Authenticate is invoked by the authenticate endpoint. When nil every
	// authenticate request succeeds.
	Authenticate AuthenticateFunc

	// AppEndpoint is the public url of this application's endpoints. When set
	// together with URI and Token, Configure registers it with the service.
	AppEndpoint string

	// SyncTimeAsInt renders time attributes as unix seconds instead of
	// RFC 3339 strings.
	SyncTimeAsInt bool

	// HTTPProxy is an optional proxy url for outbound calls.
	HTTPProxy string
}

// New returns a fresh configuration with defaults applied.
func New() *Config {
	return &Config{SyncTimeAsInt: true}
}

var defaultConfig atomic.Pointer[Config]

func init() {
	defaultConfig.Store(New())
}

// Default returns the process-wide configuration. It is never nil.
func Default() *Config {
	return defaultConfig.Load()
}

// SetDefault replaces the process-wide configuration. Passing nil resets it
// to [New].
func SetDefault(cfg *Config) {
	if cfg == nil {
		cfg = New()
	}
	defaultConfig.Store(cfg)
}

// OrDefault returns cfg, or the process default when cfg is nil.
func OrDefault(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}
	return cfg
}
