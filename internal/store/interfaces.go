package store

import (
	"context"

	"github.com/MKhiriev/rhoconnect-go/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	// UpdateProduct saves the non-zero fields of changes onto the stored
	// product and returns the result.
	UpdateProduct(ctx context.Context, id uint, changes map[string]any) (models.Product, error)
	DeleteProduct(ctx context.Context, id uint) (models.Product, error)
}
