package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

// productRepository stores [models.Product] through gorm. Writes go through
// the gorm callback chain, so a resource observer attached to the connection
// sees every change.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	err := r.db.withRetry(ctx, func(tx *gorm.DB) error {
		return tx.Order("id").Find(&products).Error
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.ListProducts").Msg("error listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product

	err := r.db.withRetry(ctx, func(tx *gorm.DB) error {
		return tx.First(&product, id).Error
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.Product{}, ErrProductNotFound
	case err != nil:
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	err := r.db.withRetry(ctx, func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.CreateProduct").Msg("error creating product")
		return fmt.Errorf("%w: %w", ErrExecutingStatment, err)
	}

	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, id uint, changes map[string]any) (models.Product, error) {
	product, err := r.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	err = r.db.withRetry(ctx, func(tx *gorm.DB) error {
		return tx.Model(&product).Updates(changes).Error
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error updating product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatment, err)
	}

	return product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uint) (models.Product, error) {
	product, err := r.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	err = r.db.withRetry(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&product).Error
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatment, err)
	}

	return product, nil
}
