package config

import "errors"

var (
	// ErrInvalidConfig wraps validation failures of a resolved [Config].
	ErrInvalidConfig = errors.New("invalid rhoconnect configuration")
	// ErrInvalidURI is returned by [SplitCredentials] for unparsable input.
	ErrInvalidURI = errors.New("invalid rhoconnect uri")
)
