// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// auth enforces bearer authentication.
//
// The token is taken from the "Authorization" header and checked with
// [service.AuthService.ParseToken]. On success the caller's
// [models.Principal] and the raw token are stored in the request context;
// otherwise the request is rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, err, "request rejected by auth middleware")
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err, "error occurred during parsing token")
			return
		}

		ctx = utils.WithPrincipal(ctx, models.Principal{
			UserID:   claims.UserID(),
			Username: claims.Username,
		})
		ctx = utils.WithToken(ctx, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token of an "Authorization: Bearer
// <token>" header. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// principal returns the authenticated caller stored by auth.
func principal(r *http.Request) (models.Principal, error) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, ErrNoPrincipal
	}
	return p, nil
}
