// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// Address is the base URL or host:port of the API server.
	// Env: CLIENT_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from CLIENT_* environment
// variables and fills the remaining fields with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg, "CLIENT_"); err != nil {
		return nil, err
	}

	defaults := ClientConfig{Address: "http://localhost:8080", RequestTimeout: 15 * time.Second}
	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, fmt.Errorf("error applying default client configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}
	return nil
}
