// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements credential hashing and access token handling.
//
// [PasswordHasher] produces bcrypt hashes and still verifies the legacy
// PBKDF2 encoding "iterations.saltBase64.keyBase64". [TokenIssuer] signs
// and validates HS256 access tokens carrying the user's identity claims.
package crypto

import "github.com/valyan/clinic-manager/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a new salted bcrypt hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. It accepts both the
	// bcrypt and the legacy PBKDF2 encodings and never panics on malformed
	// input; any parse failure yields false.
	Verify(plaintext, hash string) bool

	// NeedsRehash reports whether hash should be replaced by a fresh Hash
	// result (legacy encoding or weaker bcrypt cost).
	NeedsRehash(hash string) bool
}

// TokenIssuer issues and validates signed, time-limited access tokens.
type TokenIssuer interface {
	// Issue signs a token for identity, valid from now until now plus the
	// configured duration.
	Issue(identity models.Identity) (models.Token, error)

	// Validate checks signature, issuer, audience, expiry and not-before.
	// It returns the claims and true on success, and false on any failure.
	Validate(tokenString string) (models.Claims, bool)
}
