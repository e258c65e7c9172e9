// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the clinic REST API.
//
// [APIClient] hides the transport from callers such as the command-line
// client. Non-2xx responses are mapped to the sentinel errors of errors.go so
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401); the server's error messages are kept in the wrapped text.
package adapter

import (
	"context"

	"github.com/valyan/clinic-manager/models"
)

type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, identifier, password string) (models.LoginResult, error)

	// Logout asks the server to revoke the stored token and forgets it.
	Logout(ctx context.Context) error

	// ValidateToken reports whether token is accepted by the server.
	ValidateToken(ctx context.Context, token string) (bool, error)

	// ListUsers fetches one page of the users grid.
	ListUsers(ctx context.Context, filter models.UserFilter, query models.SearchQuery) (models.PagedResult[models.User], error)

	// QueryMedicalStaff posts a grid request for medical staff.
	QueryMedicalStaff(ctx context.Context, req models.MedicalStaffGridRequest) (models.PagedResult[models.MedicalStaff], error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionInfo, error)
}
