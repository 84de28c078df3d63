package service

import (
	"github.com/MKhiriev/rhoconnect-go/internal/config"
	"github.com/MKhiriev/rhoconnect-go/internal/crypto"
	"github.com/MKhiriev/rhoconnect-go/internal/store"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

type Services struct {
	AppInfoService AppInfoService
	AuthService    AuthService
	ProductService ProductService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfoService,
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), logger),
		ProductService: NewProductService(storages.ProductRepository, logger),
	}, nil
}
