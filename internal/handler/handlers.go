package handler

import (
	"github.com/MKhiriev/rhoconnect-go/endpoint"
	"github.com/MKhiriev/rhoconnect-go/internal/config"
	"github.com/MKhiriev/rhoconnect-go/internal/handler/http"
	"github.com/MKhiriev/rhoconnect-go/internal/service"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, helpers *endpoint.Helpers, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, helpers, logger),
	}, nil
}
