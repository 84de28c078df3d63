// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	err := validation.Errors{
		"server.address":          validation.Validate(cfg.Server.HTTPAddress, validation.Required),
		"server.request_timeout":  validation.Validate(cfg.Server.RequestTimeout, validation.Min(0)),
		"server.shutdown_timeout": validation.Validate(cfg.Server.ShutdownTimeout, validation.Min(0)),
		"storage.db.dsn":          validation.Validate(cfg.Storage.DB.DSN, validation.Required),
		"rhoconnect.url":          validation.Validate(cfg.RhoConnect.URL, is.URL),
		"app.endpoint":            validation.Validate(cfg.App.Endpoint, is.URL),
		"app.seed_password": validation.Validate(cfg.App.SeedPassword,
			validation.When(cfg.App.SeedLogin != "", validation.Required)),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
