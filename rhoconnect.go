// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rhoconnect connects a Go application's data models to a
// RhoConnect mobile-sync service.
//
// Configure is called once at startup. The sub-packages provide the
// outbound client (client), the model lifecycle observer and resource
// registry (resource), and the inbound endpoints (endpoint).
//
//	cfg, err := rhoconnect.Configure(ctx, func(c *config.Config) {
//		c.URI = "http://rhoconnect.example.com"
//		c.Token = "secrettoken"
//		c.Authenticate = func(ctx context.Context, creds models.Credentials) bool {
//			return users.Authenticate(ctx, creds)
//		}
//	})
package rhoconnect

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhoconnect-go/client"
	"github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

type configureOptions struct {
	logger *logger.Logger
}

// ConfigureOption customizes [Configure].
type ConfigureOption func(*configureOptions)

// WithLogger routes Configure diagnostics to l.
func WithLogger(l *logger.Logger) ConfigureOption {
	return func(o *configureOptions) { o.logger = l }
}

// Configure builds a fresh [config.Config], applies mutate, resolves it
// against the environment (environment values win), installs it as the
// process default and returns it. Prior state is fully replaced.
//
// When the resolved configuration carries an app endpoint, a uri and a token,
// Configure registers the endpoint with the service. A failed registration is
// logged and returned, but the configuration stays installed.
func Configure(ctx context.Context, mutate func(*config.Config), opts ...ConfigureOption) (*config.Config, error) {
	o := configureOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	log := logger.OrNop(o.logger)

	cfg := config.New()
	if mutate != nil {
		mutate(cfg)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	if err = cfg.Resolve(env); err != nil {
		return nil, fmt.Errorf("error resolving rhoconnect configuration: %w", err)
	}

	config.SetDefault(cfg)
	log.Info().Str("uri", cfg.URI).Str("app_endpoint", cfg.AppEndpoint).Msg("rhoconnect configured")

	if !cfg.Registrable() {
		return cfg, nil
	}

	c, err := client.New(
		client.WithURI(cfg.URI),
		client.WithToken(cfg.Token),
		client.WithConfig(cfg),
		client.WithLogger(log),
	)
	if err != nil {
		return cfg, err
	}

	if _, err = c.SaveAdapter(ctx, cfg.AppEndpoint); err != nil {
		log.Err(err).Str("func", "Configure").Msg("error registering app endpoint")
		return cfg, fmt.Errorf("error registering app endpoint: %w", err)
	}

	return cfg, nil
}
