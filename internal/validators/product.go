package validators

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/rhoconnect-go/models"
)

// Field names accepted by [ProductValidator]. They match the attribute keys
// used on the wire.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldBrand    = "brand"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
	FieldSKU      = "sku"
)

var (
	productFields = []string{FieldName, FieldBrand, FieldPrice, FieldQuantity, FieldSKU}

	priceFormat = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

type ProductValidator struct{}

func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate checks a [models.Product]. Without fields every attribute except
// the id is validated.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProduct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProduct(ctx context.Context, p models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = productFields
	}

	for _, f := range fields {
		var err, sentinel error
		switch f {
		case FieldID:
			err, sentinel = validation.Validate(p.ID, validation.Required), ErrInvalidProductID
		case FieldName:
			err, sentinel = validation.ValidateWithContext(ctx, p.Name, validation.Required, validation.Length(1, 255)), ErrInvalidProductName
		case FieldBrand:
			err, sentinel = validation.ValidateWithContext(ctx, p.Brand, validation.Length(0, 255)), ErrInvalidProductBrand
		case FieldPrice:
			err, sentinel = validation.ValidateWithContext(ctx, p.Price, validation.Match(priceFormat)), ErrInvalidProductPrice
		case FieldQuantity:
			err, sentinel = validation.ValidateWithContext(ctx, p.Quantity, validation.Min(0)), ErrInvalidProductQuantity
		case FieldSKU:
			err, sentinel = validation.ValidateWithContext(ctx, p.SKU, validation.NilOrNotEmpty, validation.Length(1, 64)), ErrInvalidProductSKU
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}

	return nil
}
