// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

const internalErrorMessage = "an unexpected error occurred"

var errorStatusMap = map[error]int{
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	ErrInvalidJSON:                   http.StatusBadRequest,
	ErrInvalidQueryParameter:         http.StatusBadRequest,
	utils.ErrEmptyBody:               http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrNotFound:  http.StatusNotFound,
	service.ErrDuplicate: http.StatusConflict,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages renders the client-facing messages of err. Validation errors
// list every problem; internal errors never leak their cause.
func errorMessages(err error, status int) []string {
	if status == http.StatusInternalServerError {
		return []string{internalErrorMessage}
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Messages) > 0 {
		return validationErr.Messages
	}

	for _, public := range []error{
		service.ErrInvalidCredentials,
		service.ErrUnauthorized,
		ErrEmptyAuthorizationHeader,
		ErrInvalidAuthorizationHeader,
		ErrEmptyToken,
		ErrInvalidJSON,
		utils.ErrEmptyBody,
	} {
		if errors.Is(err, public) {
			return []string{public.Error()}
		}
	}

	return []string{err.Error()}
}

// writeError logs err and answers with the status and payload of its kind.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Errors: errorMessages(err, status)}, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

// writeData answers with the success envelope.
func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, data any, message string, status int) {
	if _, err := utils.WriteJSON(w, models.Response[any]{Data: data, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: []string{"resource not found"}}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: []string{"method not allowed"}}, http.StatusMethodNotAllowed)
}
