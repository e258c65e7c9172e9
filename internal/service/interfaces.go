// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the clinic API: credential
// checks and token handling, CRUD over users, persons and medical staff,
// reference location reads, and the generic paged/grouped grid query.
//
// Services return the error kinds declared in errors.go. The caller's
// identity is passed explicitly as a [models.Principal] to every operation
// that records who changed a record.
package service

import (
	"context"

	"github.com/valyan/clinic-manager/models"
)

type AuthService interface {
	// Login checks the credentials and issues an access token. Unknown
	// identifiers, wrong passwords and inactive accounts all yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	// Logout revokes the token when a revocation store is configured.
	Logout(ctx context.Context, tokenString string) error
	// ValidateToken reports whether the token is valid and its user still
	// exists and is active. The error is only set on infrastructure failure.
	ValidateToken(ctx context.Context, tokenString string) (bool, error)
	// ParseToken returns the claims of a valid, non-revoked token or
	// ErrUnauthorized.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

type UserService interface {
	Create(ctx context.Context, principal models.Principal, req models.CreateUserRequest) (models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, principal models.Principal, id string, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, principal models.Principal, id string) error
	Query(ctx context.Context, filter models.UserFilter, query models.SearchQuery) (models.PagedResult[models.User], error)
}

type PersonService interface {
	Create(ctx context.Context, principal models.Principal, person models.Person) (models.Person, error)
	Get(ctx context.Context, id string) (models.Person, error)
	Update(ctx context.Context, principal models.Principal, id string, person models.Person) (models.Person, error)
	Delete(ctx context.Context, principal models.Principal, id string) error
	Query(ctx context.Context, filter models.PersonFilter, query models.SearchQuery) (models.PagedResult[models.Person], error)
}

type LocationService interface {
	Counties(ctx context.Context) ([]models.County, error)
	Localities(ctx context.Context) ([]models.Locality, error)
	LocalitiesByCountyName(ctx context.Context, countyName string) ([]models.Locality, error)
	LocalitiesByCountyID(ctx context.Context, countyID int64) ([]models.Locality, error)
	CountiesWithLocalities(ctx context.Context) ([]models.CountyWithLocalities, error)
}

type MedicalStaffService interface {
	Create(ctx context.Context, principal models.Principal, staff models.MedicalStaff) (models.MedicalStaff, error)
	Get(ctx context.Context, id string) (models.MedicalStaff, error)
	Update(ctx context.Context, principal models.Principal, id string, staff models.MedicalStaff) (models.MedicalStaff, error)
	Delete(ctx context.Context, principal models.Principal, id string) error
	// Query serves the paged grid.
	Query(ctx context.Context, filter models.MedicalStaffFilter, query models.SearchQuery) (models.PagedResult[models.MedicalStaff], error)
	// Lookup serves dropdowns and bulk loads with the larger page ceiling.
	Lookup(ctx context.Context, filter models.MedicalStaffFilter, query models.SearchQuery) (models.PagedResult[models.MedicalStaff], error)
	// Summary returns one row per group without loading the items.
	Summary(ctx context.Context, filter models.MedicalStaffFilter, groups []models.GroupDescriptor) ([]models.GroupSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
