// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minTokenSignKeyLength is the shortest HS256 secret accepted at startup.
const minTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A missing signing key
// is fatal here so that token issuance never fails per request.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLength)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	q := cfg.Query
	if q.DefaultPageSize < 1 || q.GridMaxPageSize < 1 || q.BulkMaxPageSize < 1 {
		return fmt.Errorf("%w: page sizes must be positive", ErrInvalidQueryConfigs)
	}
	if q.DefaultPageSize > q.GridMaxPageSize {
		return fmt.Errorf("%w: default page size exceeds grid maximum", ErrInvalidQueryConfigs)
	}

	return nil
}
