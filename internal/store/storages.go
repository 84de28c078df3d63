package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhoconnect-go/internal/config"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

// Storages bundles the repositories of the demo server.
type Storages struct {
	DB                *DB
	UserRepository    UserRepository
	ProductRepository ProductRepository
}

// NewStorages connects to the database, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
	}, nil
}
