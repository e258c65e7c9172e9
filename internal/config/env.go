// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names come from the
// `env`/`envPrefix` tags, with prefix prepended to all of them ("" for the
// server, "CLIENT_" for the command-line client). Comma-separated values
// fill slice fields such as SERVER_CORS_ALLOWED_ORIGINS.
func parseEnv(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs (prefix %q): %w", prefix, err)
	}
	return nil
}
