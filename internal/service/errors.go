package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrWrongPassword         = errors.New("wrong password")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidProductID         = errors.New("invalid product id")
	ErrValidationProductInvalid = errors.New("product attributes are invalid")
)
