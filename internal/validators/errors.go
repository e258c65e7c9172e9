// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every [*FieldErrors] value.
	ErrInvalidInput = errors.New("invalid input")
)

// FieldErrors collects the messages of every rule a value failed, in the
// order the fields were checked.
type FieldErrors struct {
	Messages []string
}

// Error joins the collected messages.
func (e *FieldErrors) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Is makes errors.Is(err, ErrInvalidInput) succeed.
func (e *FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *FieldErrors) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// err returns nil when nothing was collected, so callers can return it directly.
func (e *FieldErrors) err() error {
	if len(e.Messages) == 0 {
		return nil
	}
	return e
}

// Messages extracts the collected messages from err. Any other error yields
// a single message with its text.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var fe *FieldErrors
	if errors.As(err, &fe) {
		return append([]string(nil), fe.Messages...)
	}
	return []string{err.Error()}
}
