// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the environment layer of the configuration.
type Env struct {
	URL         string `env:"RHOCONNECT_URL"`
	Token       string `env:"RHOCONNECT_TOKEN"`
	AppEndpoint string `env:"APP_ENDPOINT"`
	HTTPProxy   string `env:"RHOCONNECT_HTTP_PROXY"`
}

// LoadEnv reads the environment layer using the caarlos0/env library.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("error getting rhoconnect env configs: %w", err)
	}

	return e, nil
}

// AsConfig converts the environment layer into a partial [Config] suitable
// for merging. SyncTimeAsInt is left false so it never overrides.
func (e Env) AsConfig() *Config {
	return &Config{
		URI:         e.URL,
		Token:       e.Token,
		AppEndpoint: e.AppEndpoint,
		HTTPProxy:   e.HTTPProxy,
	}
}
