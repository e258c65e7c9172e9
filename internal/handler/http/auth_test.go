// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/models"
)

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	expiration := time.Now().Add(8 * time.Hour).UTC().Truncate(time.Second)

	svcs := newTestServices()
	auth := acceptingAuth()
	auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
		assert.Equal(t, "admin", req.Identifier)
		assert.Equal(t, "Admin123!", req.Password)
		return models.LoginResult{
			ID:         testUserID,
			Username:   "admin",
			Email:      "admin@clinic.local",
			FullName:   "Administrator Sistem",
			Token:      "signed.jwt.token",
			Expiration: expiration,
		}, nil
	}
	svcs.AuthService = auth

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/auth/login",
		`{"numeUtilizatorSauEmail":"admin","parola":"Admin123!"}`, "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var result models.LoginResult
	msg := decodeData(t, rr, &result)
	assert.NotEmpty(t, msg)
	assert.Equal(t, "signed.jwt.token", result.Token)
	assert.Equal(t, "admin", result.Username)
	assert.True(t, result.Expiration.After(time.Now()))
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantErrors []string
	}{
		{
			name:       "wrong password is generic 401",
			body:       `{"numeUtilizatorSauEmail":"admin","parola":"wrong"}`,
			loginErr:   service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantErrors: []string{service.ErrInvalidCredentials.Error()},
		},
		{
			name:       "wrapped credentials error keeps generic message",
			body:       `{"numeUtilizatorSauEmail":"ghost","parola":"x"}`,
			loginErr:   fmt.Errorf("lookup: %w", service.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantErrors: []string{service.ErrInvalidCredentials.Error()},
		},
		{
			name: "validation messages are listed",
			body: `{"numeUtilizatorSauEmail":"","parola":""}`,
			loginErr: &service.ValidationError{Messages: []string{
				"numeUtilizatorSauEmail is required", "parola is required",
			}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"numeUtilizatorSauEmail is required", "parola is required"},
		},
		{
			name:       "invalid JSON",
			body:       `{"numeUtilizatorSauEmail":`,
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{ErrInvalidJSON.Error()},
		},
		{
			name:       "infrastructure failure is sanitized",
			body:       `{"numeUtilizatorSauEmail":"admin","parola":"x"}`,
			loginErr:   errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantErrors: []string{internalErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			auth := acceptingAuth()
			auth.loginFn = func(context.Context, models.LoginRequest) (models.LoginResult, error) {
				return models.LoginResult{}, tt.loginErr
			}
			svcs.AuthService = auth

			rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/auth/login", tt.body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantErrors, decodeErrors(t, rr))
		})
	}
}

func TestLogin_EmptyBody(t *testing.T) {
	rr := serve(t, newRouterHandler(t, newTestServices()), http.MethodPost, "/api/auth/login", "", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	svcs := newTestServices()
	auth := acceptingAuth()
	var revoked string
	auth.logoutFn = func(_ context.Context, token string) error {
		revoked = token
		return nil
	}
	svcs.AuthService = auth

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/auth/logout", "", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testToken, revoked)

	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Message)
}

func TestLogout_RequiresToken(t *testing.T) {
	rr := serve(t, newRouterHandler(t, newTestServices()), http.MethodPost, "/api/auth/logout", "", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// validate-token
// ─────────────────────────────────────────────

func TestValidateToken_BodyForms(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "raw token", body: testToken},
		{name: "raw token with newline", body: testToken + "\n"},
		{name: "JSON string", body: `"` + testToken + `"`},
		{name: "JSON object", body: `{"token":"` + testToken + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			auth := acceptingAuth()
			auth.validateTokenFn = func(_ context.Context, token string) (bool, error) {
				return token == testToken, nil
			}
			svcs.AuthService = auth

			rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/auth/validate-token", tt.body, "")

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.JSONEq(t, `{"isValid":true}`, rr.Body.String())
		})
	}
}

func TestValidateToken_InvalidTokenIsFalse(t *testing.T) {
	svcs := newTestServices()
	auth := acceptingAuth()
	auth.validateTokenFn = func(context.Context, string) (bool, error) { return false, nil }
	svcs.AuthService = auth

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/auth/validate-token", "garbage", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"isValid":false}`, rr.Body.String())
}

func TestValidateToken_EmptyBody(t *testing.T) {
	rr := serve(t, newRouterHandler(t, newTestServices()), http.MethodPost, "/api/auth/validate-token", "", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"request body is empty"}, decodeErrors(t, rr))
}
