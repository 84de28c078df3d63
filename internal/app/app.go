// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the demo server: storage, services, the RhoConnect
// adapter configuration, the resource observer and the HTTP server.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhoconnect-go"
	"github.com/MKhiriev/rhoconnect-go/client"
	rcconfig "github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/endpoint"
	"github.com/MKhiriev/rhoconnect-go/internal/config"
	"github.com/MKhiriev/rhoconnect-go/internal/handler"
	"github.com/MKhiriev/rhoconnect-go/internal/handler/http"
	"github.com/MKhiriev/rhoconnect-go/internal/server"
	"github.com/MKhiriev/rhoconnect-go/internal/service"
	"github.com/MKhiriev/rhoconnect-go/internal/store"
	"github.com/MKhiriev/rhoconnect-go/internal/workers"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
	"github.com/MKhiriev/rhoconnect-go/resource"
)

// ProductResource is the name the product catalogue is synchronized under.
const ProductResource = "Product"

// App is a fully wired demo server.
type App struct {
	Storages *store.Storages
	Services *service.Services
	Registry *resource.Registry
	Observer *resource.Observer
	Adapter  *rcconfig.Config

	server  server.Server
	startup *workers.Workers
	logger  *logger.Logger
}

// New wires the application. The returned App owns the database connection
// and must be run or closed.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	a, err := wire(ctx, storages, cfg, buildInfo, log)
	if err != nil {
		_ = storages.DB.Close()
		return nil, err
	}
	return a, nil
}

func wire(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	if cfg.App.SeedLogin != "" {
		if err = services.AuthService.SeedUser(ctx, cfg.App.SeedLogin, cfg.App.SeedPassword); err != nil {
			return nil, fmt.Errorf("error seeding user: %w", err)
		}
	}

	adapterCfg, err := rhoconnect.Configure(ctx, func(c *rcconfig.Config) {
		c.URI = cfg.RhoConnect.URL
		c.Token = cfg.RhoConnect.Token
		c.AppEndpoint = cfg.App.Endpoint
		if cfg.RhoConnect.SyncTimeAsInt != nil {
			c.SyncTimeAsInt = *cfg.RhoConnect.SyncTimeAsInt
		}
		c.Authenticate = services.AuthService.Authenticate
	}, rhoconnect.WithLogger(log))
	switch {
	case adapterCfg == nil:
		return nil, fmt.Errorf("error configuring rhoconnect: %w", err)
	case err != nil:
		// every push builds its own client, so pushes work once the service is up
		log.Warn().Err(err).Msg("rhoconnect adapter registration failed")
	}

	registry := resource.NewRegistry()
	if err = registry.Register(ProductResource, services.ProductService); err != nil {
		return nil, err
	}

	observer := resource.NewObserver(resource.WithConfig(adapterCfg), resource.WithLogger(log))
	if err = observer.Track(&models.Product{}, resource.WithName(ProductResource)); err != nil {
		return nil, fmt.Errorf("error tracking products: %w", err)
	}
	if err = observer.AttachGORM(storages.DB.DB); err != nil {
		return nil, fmt.Errorf("error attaching observer: %w", err)
	}

	helpers := endpoint.NewHelpers(
		endpoint.WithRegistry(registry),
		endpoint.WithConfig(adapterCfg),
		endpoint.WithLogger(log),
	)

	handlers, err := handler.NewHandlers(services, helpers, cfg.Server, log)
	if err != nil {
		return nil, err
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, err
	}

	startup, err := startupWorkers(adapterCfg, registry, log)
	if err != nil {
		return nil, err
	}

	return &App{
		Storages: storages,
		Services: services,
		Registry: registry,
		Observer: observer,
		Adapter:  adapterCfg,
		server:   srv,
		startup:  startup,
		logger:   log,
	}, nil
}

// startupWorkers registers the callbacks when the adapter can reach
// RhoConnect and knows its own public url.
func startupWorkers(cfg *rcconfig.Config, registry *resource.Registry, log *logger.Logger) (*workers.Workers, error) {
	if !cfg.Registrable() {
		log.Info().Msg("rhoconnect callbacks not registered: url, token or app endpoint missing")
		return workers.NewWorkers(), nil
	}

	c, err := client.New(client.WithConfig(cfg), client.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return workers.NewWorkers(
		workers.NewCallbackWorker(c, cfg.AppEndpoint+http.RhoConnectPrefix, registry.Names(), log),
	), nil
}

// Run registers the callbacks and serves until ctx is cancelled or a
// termination signal arrives. The database is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.startup.Run(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("startup tasks failed")
	}

	return a.server.RunServer(ctx)
}

func (a *App) Close() error {
	return a.Storages.DB.Close()
}
