package http

import "errors"

// ErrInvalidJSON is returned for request bodies that are not a JSON object.
var ErrInvalidJSON = errors.New("invalid JSON was passed")
