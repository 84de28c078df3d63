// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Resolve finalizes cfg in place for startup:
//  1. non-empty values from e override the explicit ones;
//  2. a token embedded in URI is extracted, replacing Token;
//  3. the result is validated.
func (cfg *Config) Resolve(e Env) error {
	if err := mergo.Merge(cfg, e.AsConfig(), mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging env configs: %w", err)
	}

	uri, token, err := SplitCredentials(cfg.URI)
	if err != nil {
		return err
	}
	cfg.URI = uri
	if token != "" {
		cfg.Token = token
	}

	return cfg.Validate()
}

// Validate checks that every url-valued field that is set parses as a url.
func (cfg *Config) Validate() error {
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.URI, is.URL),
		validation.Field(&cfg.AppEndpoint, is.URL),
		validation.Field(&cfg.HTTPProxy, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Registrable reports whether the configuration carries everything needed to
// register AppEndpoint with the remote service.
func (cfg *Config) Registrable() bool {
	return cfg.AppEndpoint != "" && cfg.URI != "" && cfg.Token != ""
}
