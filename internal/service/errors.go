// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/internal/validators"
)

// Error kinds returned by the services. The HTTP layer maps each of them to
// one status code; anything else is reported as an unexpected failure.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid username, email or password")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError lists every problem found in a request. It matches
// [ErrValidation].
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// validationFailed converts a validator result into a [ValidationError].
// Validator misuse (unsupported type, unknown field) is a programming error
// and stays unexpected.
func validationFailed(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrInvalidInput) {
		return newValidationError(validators.Messages(err)...)
	}
	return fmt.Errorf("validator failed: %w", err)
}

// storeError translates repository sentinels into service error kinds.
// what names the entity in the resulting message.
func storeError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	case errors.Is(err, store.ErrReferenceNotFound):
		return newValidationError(what + " references a record that does not exist")
	default:
		return err
	}
}
