// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/valyan/clinic-manager/internal/crypto"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/internal/validators"
	"github.com/valyan/clinic-manager/models"
)

// authService is the concrete implementation of AuthService.
// A login goes through validation, a single username-or-email lookup,
// password verification and token issuance; every failure after validation
// is reported as ErrInvalidCredentials so callers cannot probe which
// accounts exist.
type authService struct {
	userRepository store.UserRepository

	// denylist holds revoked token ids. It is a no-op when Redis is not
	// configured, which makes logout purely client-side.
	denylist store.TokenDenylist

	hasher    crypto.PasswordHasher
	tokens    crypto.TokenIssuer
	validator validators.Validator

	now func() time.Time

	// decoyHash is verified against when the identifier matches no account,
	// so unknown and known identifiers cost the same hash work.
	decoyOnce sync.Once
	decoyHash string

	logger *logger.Logger
}

// decoyPassword only seeds decoyHash; no account can log in with it.
const decoyPassword = "clinic-manager-unknown-account"

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	denylist store.TokenDenylist,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenIssuer,
	logger *logger.Logger,
) AuthService {
	if denylist == nil {
		denylist = store.NewNopTokenDenylist()
	}

	return &authService{
		userRepository: userRepository,
		denylist:       denylist,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validators.NewUserValidator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates a user by username or email and issues a token.
//
// Returns:
//   - a ValidationError when the identifier or the password is missing;
//   - ErrInvalidCredentials for an unknown identifier, a wrong password or
//     an inactive account;
//   - a wrapped error on infrastructure failure.
//
// A successful login with a legacy password hash stores a fresh bcrypt hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, validationFailed(err)
	}

	identifier := strings.TrimSpace(req.Identifier)
	user, err := a.userRepository.FindByUsernameOrEmail(ctx, identifier)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("func", "authService.Login").Msg("login attempt for unknown identifier")
		a.verifyDecoy(ctx, req.Password)
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by username or email failed")
		return models.LoginResult{}, fmt.Errorf("user search by username or email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Info().Str("func", "authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Str("func", "authService.Login").Str("user_id", user.ID).Msg("login attempt for inactive account")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	a.upgradePasswordHash(ctx, user, req.Password)

	fullName := user.FullName
	if fullName == "" {
		fullName = user.Username
	}

	token, err := a.tokens.Issue(models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: fullName,
	})
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.ID).Msg("token issuance failed")
		return models.LoginResult{}, fmt.Errorf("token issuance failed: %w", err)
	}

	if err = a.userRepository.TouchLastLogin(ctx, user.ID, a.now().UTC()); err != nil {
		log.Warn().Err(err).Str("func", "authService.Login").Str("user_id", user.ID).Msg("failed to record last login")
	}

	log.Info().Str("func", "authService.Login").Str("user_id", user.ID).Str("username", user.Username).Msg("user logged in")

	return models.LoginResult{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   fullName,
		Token:      token.String(),
		Expiration: token.ExpiresAt(),
	}, nil
}

// verifyDecoy runs a password check whose result is discarded. The decoy
// hash is created on first use with the configured hasher, so its cost
// follows the bcrypt cost of real accounts.
func (a *authService) verifyDecoy(ctx context.Context, password string) {
	a.decoyOnce.Do(func() {
		hash, err := a.hasher.Hash(decoyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "authService.verifyDecoy").Msg("failed to create decoy hash")
			return
		}
		a.decoyHash = hash
	})
	_ = a.hasher.Verify(password, a.decoyHash)
}

// upgradePasswordHash replaces a legacy or weaker hash after a successful
// verification. Failures are logged; the login itself still succeeds.
func (a *authService) upgradePasswordHash(ctx context.Context, user models.User, password string) {
	if !a.hasher.NeedsRehash(user.PasswordHash) {
		return
	}

	log := logger.FromContext(ctx)
	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.upgradePasswordHash").Str("user_id", user.ID).Msg("failed to rehash password")
		return
	}
	if err = a.userRepository.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		log.Warn().Err(err).Str("func", "authService.upgradePasswordHash").Str("user_id", user.ID).Msg("failed to store upgraded password hash")
		return
	}
	log.Info().Str("func", "authService.upgradePasswordHash").Str("user_id", user.ID).Msg("password hash upgraded")
}

// Logout revokes tokenString until its expiry. An invalid or expired token
// has nothing to revoke and is accepted silently.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	claims, ok := a.tokens.Validate(tokenString)
	if !ok {
		return nil
	}

	ttl := claims.ExpiresAtTime().Sub(a.now())
	if err := a.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Logout").Str("user_id", claims.UserID()).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// ValidateToken checks the token itself, the denylist and the account
// behind it. A deleted or deactivated user invalidates the token.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (bool, error) {
	claims, err := a.ParseToken(ctx, tokenString)
	if errors.Is(err, ErrUnauthorized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	user, err := a.userRepository.GetByID(ctx, claims.UserID())
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.ValidateToken").Msg("user lookup failed")
		return false, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.IsActive, nil
}

// ParseToken returns the claims of a valid, non-revoked token.
// Any token problem is normalised to ErrUnauthorized; only a denylist
// failure is returned as is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, ok := a.tokens.Validate(tokenString)
	if !ok {
		return models.Claims{}, ErrUnauthorized
	}

	revoked, err := a.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.ParseToken").Msg("denylist lookup failed")
		return models.Claims{}, fmt.Errorf("denylist lookup failed: %w", err)
	}
	if revoked {
		return models.Claims{}, ErrUnauthorized
	}

	return claims, nil
}
