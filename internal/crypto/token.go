// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/models"
)

var (
	// ErrMissingSignKey is returned at construction when no signing key is
	// configured. It is a startup error, never a per-request one.
	ErrMissingSignKey = errors.New("token sign key is not configured")

	// ErrInvalidTokenDuration is returned at construction for a non-positive
	// token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")

	// ErrInvalidIdentity is returned by Issue when the identity has no user id.
	ErrInvalidIdentity = errors.New("identity has no user id")
)

// JWTIssuer is the HS256 implementation of [TokenIssuer].
type JWTIssuer struct {
	signKey  []byte
	issuer   string
	audience string
	duration time.Duration

	now func() time.Time
}

// NewJWTIssuer builds a [JWTIssuer] from the application config.
func NewJWTIssuer(cfg config.App) (*JWTIssuer, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingSignKey
	}
	if cfg.TokenDuration <= 0 {
		return nil, ErrInvalidTokenDuration
	}

	return &JWTIssuer{
		signKey:  []byte(cfg.TokenSignKey),
		issuer:   cfg.TokenIssuer,
		audience: cfg.TokenAudience,
		duration: cfg.TokenDuration,
		now:      time.Now,
	}, nil
}

// WithClock replaces the time source; used by tests.
func (j *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	j.now = now
	return j
}

// Duration returns the configured token lifetime.
func (j *JWTIssuer) Duration() time.Duration {
	return j.duration
}

func (j *JWTIssuer) Issue(identity models.Identity) (models.Token, error) {
	if identity.UserID == "" {
		return models.Token{}, ErrInvalidIdentity
	}

	now := j.now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.duration)),
		},
		Username: identity.Username,
		Email:    identity.Email,
		FullName: identity.FullName,
	}
	if j.audience != "" {
		claims.Audience = jwt.ClaimStrings{j.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

func (j *JWTIssuer) Validate(tokenString string) (models.Claims, bool) {
	if tokenString == "" {
		return models.Claims{}, false
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}
	if j.audience != "" {
		opts = append(opts, jwt.WithAudience(j.audience))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return j.signKey, nil
	}, opts...)
	if err != nil || !token.Valid {
		return models.Claims{}, false
	}

	if claims.Subject == "" {
		return models.Claims{}, false
	}

	return *claims, true
}
