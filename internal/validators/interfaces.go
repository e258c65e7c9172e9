// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads and domain records before they
// reach the store.
//
// Each Validator accepts a set of concrete types and an optional list of
// field names restricting which rules run. Failed rules are collected into a
// [*FieldErrors] so the caller can report every problem at once; the error
// matches [ErrInvalidInput].
package validators

import "context"

// Validator validates arbitrary input values. Unsupported types yield
// [ErrUnsupportedType] and unknown field names [ErrUnknownField].
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
