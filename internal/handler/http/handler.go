package http

import (
	"github.com/MKhiriev/rhoconnect-go/endpoint"
	"github.com/MKhiriev/rhoconnect-go/internal/service"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

type Handler struct {
	services *service.Services
	helpers  *endpoint.Helpers

	logger *logger.Logger
}

func NewHandler(services *service.Services, helpers *endpoint.Helpers, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		helpers:  helpers,
		logger:   logger,
	}
}
