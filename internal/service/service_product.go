package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/rhoconnect-go/internal/store"
	"github.com/MKhiriev/rhoconnect-go/internal/validators"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

// productService serves the "Product" resource. All devices share the
// catalogue, so the partition is only logged.
type productService struct {
	productRepository store.ProductRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		validator:         validators.NewProductValidator(),
		logger:            logger,
	}
}

func (s *productService) Query(ctx context.Context, partition string) ([]any, error) {
	products, err := s.productRepository.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("partition", partition).Int("count", len(products)).Msg("products queried")

	objects := make([]any, 0, len(products))
	for i := range products {
		objects = append(objects, &products[i])
	}
	return objects, nil
}

func (s *productService) ReceiveCreate(ctx context.Context, partition string, attrs models.Attributes) (string, error) {
	product, _, err := productFromAttributes(attrs)
	if err != nil {
		return "", err
	}
	if err = s.validator.Validate(ctx, product); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidationProductInvalid, err)
	}

	product.ID = 0
	if err = s.productRepository.CreateProduct(ctx, &product); err != nil {
		return "", err
	}

	return formatID(product.ID), nil
}

// ReceiveUpdate changes only the attributes present in attrs.
func (s *productService) ReceiveUpdate(ctx context.Context, partition string, attrs models.Attributes) (string, error) {
	id, err := productID(attrs)
	if err != nil {
		return "", err
	}

	product, fields, err := productFromAttributes(attrs)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return formatID(id), nil
	}
	if err = s.validator.Validate(ctx, product, fields...); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidationProductInvalid, err)
	}

	changes := make(map[string]any, len(fields))
	for _, f := range fields {
		changes[f] = columnValue(product, f)
	}

	updated, err := s.productRepository.UpdateProduct(ctx, id, changes)
	if err != nil {
		return "", err
	}

	return formatID(updated.ID), nil
}

func (s *productService) ReceiveDelete(ctx context.Context, partition string, attrs models.Attributes) (string, error) {
	id, err := productID(attrs)
	if err != nil {
		return "", err
	}

	deleted, err := s.productRepository.DeleteProduct(ctx, id)
	if err != nil {
		return "", err
	}

	return formatID(deleted.ID), nil
}

// productFromAttributes copies the known attributes onto a product and
// reports which of them were present.
func productFromAttributes(attrs models.Attributes) (models.Product, []string, error) {
	var (
		p      models.Product
		fields []string
	)

	for _, f := range []string{validators.FieldName, validators.FieldBrand, validators.FieldPrice, validators.FieldQuantity, validators.FieldSKU} {
		raw, ok := attrs[f]
		if !ok {
			continue
		}
		fields = append(fields, f)

		switch f {
		case validators.FieldName:
			p.Name = stringValue(raw)
		case validators.FieldBrand:
			p.Brand = stringValue(raw)
		case validators.FieldPrice:
			p.Price = stringValue(raw)
		case validators.FieldSKU:
			if raw != nil {
				sku := stringValue(raw)
				p.SKU = &sku
			}
		case validators.FieldQuantity:
			q, err := intValue(raw)
			if err != nil {
				return models.Product{}, nil, fmt.Errorf("%w: quantity: %w", ErrValidationProductInvalid, err)
			}
			p.Quantity = q
		}
	}

	return p, fields, nil
}

func columnValue(p models.Product, field string) any {
	switch field {
	case validators.FieldName:
		return p.Name
	case validators.FieldBrand:
		return p.Brand
	case validators.FieldPrice:
		return p.Price
	case validators.FieldQuantity:
		return p.Quantity
	case validators.FieldSKU:
		return p.SKU
	}
	return nil
}

func productID(attrs models.Attributes) (uint, error) {
	raw, ok := attrs[validators.FieldID]
	if !ok || raw == nil {
		return 0, ErrInvalidProductID
	}

	id, err := strconv.ParseUint(stringValue(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidProductID, raw)
	}
	return uint(id), nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func intValue(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return t, nil
	case float64:
		if t != float64(int(t)) {
			return 0, fmt.Errorf("%v is not a whole number", t)
		}
		return int(t), nil
	case json.Number:
		n, err := t.Int64()
		return int(n), err
	case string:
		if t == "" {
			return 0, nil
		}
		return strconv.Atoi(t)
	default:
		return 0, fmt.Errorf("unsupported value %v", t)
	}
}
