// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyan/clinic-manager/internal/crypto"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/internal/validators"
	"github.com/valyan/clinic-manager/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	ids            *utils.UUIDGenerator
	limits         models.QueryLimits

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, limits models.QueryLimits, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		limits:         limits,
		logger:         logger,
	}
}

// Create provisions a new account for an existing person. The existence
// pre-check gives a friendly message; the unique indexes decide races.
func (s *userService) Create(ctx context.Context, principal models.Principal, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, validationFailed(err)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	taken, err := s.userRepository.ExistsByUsernameOrEmail(ctx, username, email, "")
	if err != nil {
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if taken {
		return models.User{}, fmt.Errorf("numeUtilizator or email already in use: %w", ErrDuplicate)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.Create(ctx, models.User{
		ID:           s.ids.Generate(),
		PersonID:     strings.TrimSpace(req.PersonID),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         strings.TrimSpace(req.Role),
		IsActive:     true,
		CreatedBy:    auditName(principal),
	})
	if err != nil {
		log.Err(err).Str("func", "userService.Create").Str("username", username).Msg("user creation ended with error")
		return models.User{}, storeError(err, "user")
	}

	log.Info().Str("func", "userService.Create").Str("user_id", user.ID).Str("by", auditName(principal)).Msg("user created")
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	if !isID(id) {
		return models.User{}, fmt.Errorf("user: %w", ErrNotFound)
	}

	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return models.User{}, storeError(err, "user")
	}
	return user, nil
}

// Update changes the email, the role, the active flag and, when given, the
// password. The username is immutable.
func (s *userService) Update(ctx context.Context, principal models.Principal, id string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, validationFailed(err)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	email := strings.TrimSpace(req.Email)
	if !strings.EqualFold(email, current.Email) {
		taken, err := s.userRepository.ExistsByUsernameOrEmail(ctx, "", email, current.ID)
		if err != nil {
			return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
		}
		if taken {
			return models.User{}, fmt.Errorf("email already in use: %w", ErrDuplicate)
		}
	}

	updated := current
	updated.Email = email
	updated.Role = strings.TrimSpace(req.Role)
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	updated.UpdatedBy = auditName(principal)

	if principal.UserID == current.ID && !updated.IsActive {
		return models.User{}, newValidationError("you cannot deactivate your own account")
	}

	updated, err = s.userRepository.Update(ctx, updated)
	if err != nil {
		log.Err(err).Str("func", "userService.Update").Str("user_id", id).Msg("user update ended with error")
		return models.User{}, storeError(err, "user")
	}

	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		if err = s.userRepository.UpdatePasswordHash(ctx, id, hash); err != nil {
			return models.User{}, storeError(err, "user")
		}
		log.Info().Str("func", "userService.Update").Str("user_id", id).Msg("password changed")
	}

	return updated, nil
}

// Delete deactivates the account; users are never physically removed.
func (s *userService) Delete(ctx context.Context, principal models.Principal, id string) error {
	if !isID(id) {
		return fmt.Errorf("user: %w", ErrNotFound)
	}
	if principal.UserID == id {
		return newValidationError("you cannot deactivate your own account")
	}

	if err := s.userRepository.Deactivate(ctx, id, auditName(principal)); err != nil {
		return storeError(err, "user")
	}

	logger.FromContext(ctx).Info().Str("func", "userService.Delete").Str("user_id", id).Str("by", auditName(principal)).Msg("user deactivated")
	return nil
}

func (s *userService) Query(ctx context.Context, filter models.UserFilter, query models.SearchQuery) (models.PagedResult[models.User], error) {
	page, err := normalizeQuery(query, s.limits, models.UserFields)
	if err != nil {
		return models.PagedResult[models.User]{}, err
	}
	return runQuery[models.User, models.UserFilter](ctx, s.userRepository, filter, page)
}

// isID reports whether id can name a stored row. Anything else cannot exist,
// so callers answer NotFound without a database round trip.
func isID(id string) bool {
	return utils.IsUUID(id)
}

// auditName is the value recorded in the creat_de / modificat_de columns.
func auditName(principal models.Principal) string {
	if principal.Username != "" {
		return principal.Username
	}
	return principal.UserID
}
