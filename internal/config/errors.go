// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token settings (for example, a
	// missing or too short signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidQueryConfigs indicates inconsistent page size limits.
	ErrInvalidQueryConfigs = errors.New("invalid query configuration")
	// ErrInvalidClientConfigs indicates invalid CLI client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
