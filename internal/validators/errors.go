package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidProductID       = errors.New("invalid product id")
	ErrInvalidProductName     = errors.New("invalid product name")
	ErrInvalidProductBrand    = errors.New("invalid product brand")
	ErrInvalidProductPrice    = errors.New("invalid product price")
	ErrInvalidProductQuantity = errors.New("invalid product quantity")
	ErrInvalidProductSKU      = errors.New("invalid product sku")
)
