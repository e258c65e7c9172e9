// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

const maxTokenBodyBytes = 16 << 10

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, "error decoding login request")
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "login failed")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", result.ID).Msg("user logged in")
	h.writeData(w, r, result, "authentication succeeded", http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := utils.GetTokenFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), tokenString); err != nil {
		h.writeError(w, r, err, "logout failed")
		return
	}

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// validateToken accepts the token as the raw body, as a JSON string or as
// {"token": "..."}. It answers 200 {isValid} for any well-formed request.
func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	tokenString, err := readTokenBody(r)
	if err != nil {
		h.writeError(w, r, err, "error reading token")
		return
	}

	valid, err := h.services.AuthService.ValidateToken(r.Context(), tokenString)
	if err != nil {
		h.writeError(w, r, err, "token validation failed")
		return
	}

	if _, err := utils.WriteJSON(w, models.TokenValidationResult{IsValid: valid}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func readTokenBody(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", utils.ErrEmptyBody
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxTokenBodyBytes))
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", utils.ErrEmptyBody
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return s, nil
	case '{':
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return body.Token, nil
	default:
		return string(raw), nil
	}
}
