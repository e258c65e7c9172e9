// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the clinic API: PostgreSQL
// repositories for users, persons, reference locations and medical staff,
// the shared grid query builder, and the optional Redis token denylist.
package store

import (
	"context"
	"time"

	"github.com/valyan/clinic-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// GridRepository is the query surface shared by every entity exposed through
// a paged or grouped grid. Property names in page, groups and sort must be
// whitelisted external names; unknown names yield [ErrBuildingSQLQuery].
type GridRepository[T any, F any] interface {
	// Count returns the number of rows matching filter.
	Count(ctx context.Context, filter F) (int, error)

	// List returns one page of rows matching filter.
	List(ctx context.Context, filter F, page models.PageRequest) ([]T, error)

	// GroupSummaries returns one row per distinct group key, ordered by the
	// group descriptors, with the item count and the latest modification.
	GroupSummaries(ctx context.Context, filter F, groups []models.GroupDescriptor) ([]models.GroupSummary, error)

	// ListInGroups returns the rows belonging to the given group keys, ordered
	// by group then by sort.
	ListInGroups(ctx context.Context, filter F, groups []models.GroupDescriptor, keys [][]string, sort *models.SortDescriptor) ([]models.Keyed[T], error)
}

// UserRepository persists login accounts (utilizatori).
type UserRepository interface {
	GridRepository[models.User, models.UserFilter]

	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	// FindByUsernameOrEmail matches identifier case-insensitively against
	// both the username and the email in a single lookup. The result carries
	// the password hash and the linked person's display name.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)
	// ExistsByUsernameOrEmail reports whether another account (other than
	// excludeID) already uses username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email, excludeID string) (bool, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Deactivate(ctx context.Context, id, by string) error
}

// PersonRepository persists natural-person records (persoane).
type PersonRepository interface {
	GridRepository[models.Person, models.PersonFilter]

	Create(ctx context.Context, person models.Person) (models.Person, error)
	GetByID(ctx context.Context, id string) (models.Person, error)
	ExistsByCNP(ctx context.Context, cnp, excludeID string) (bool, error)
	Update(ctx context.Context, person models.Person) (models.Person, error)
	Deactivate(ctx context.Context, id, by string) error
}

// MedicalStaffRepository persists medical staff records (personal_medical).
type MedicalStaffRepository interface {
	GridRepository[models.MedicalStaff, models.MedicalStaffFilter]

	Create(ctx context.Context, staff models.MedicalStaff) (models.MedicalStaff, error)
	GetByID(ctx context.Context, id string) (models.MedicalStaff, error)
	ExistsByLicenseNumber(ctx context.Context, licenseNumber, excludeID string) (bool, error)
	Update(ctx context.Context, staff models.MedicalStaff) (models.MedicalStaff, error)
	Deactivate(ctx context.Context, id, by string) error
}

// LocationRepository reads the county and locality reference data.
type LocationRepository interface {
	ListCounties(ctx context.Context) ([]models.County, error)
	ListLocalities(ctx context.Context) ([]models.Locality, error)
	ListLocalitiesByCountyName(ctx context.Context, countyName string) ([]models.Locality, error)
	ListLocalitiesByCountyID(ctx context.Context, countyID int64) ([]models.Locality, error)
	ListCountiesWithLocalities(ctx context.Context) ([]models.CountyWithLocalities, error)
}

// TokenDenylist records revoked access tokens by their jti until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
