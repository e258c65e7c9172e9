// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// legacyMaxIterations bounds the work a stored legacy hash can demand.
	legacyMaxIterations = 10_000_000
	legacySeparator     = "."
)

// ErrEmptyPassword is returned by Hash for an empty plaintext.
var ErrEmptyPassword = errors.New("password is empty")

type passwordHasher struct {
	cost int
}

// NewPasswordHasher returns a [PasswordHasher] using the given bcrypt cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordHasher{cost: cost}
}

func (p *passwordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (p *passwordHasher) Verify(plaintext, hash string) bool {
	if plaintext == "" || hash == "" {
		return false
	}

	if isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}

	return verifyLegacy(plaintext, hash)
}

func (p *passwordHasher) NeedsRehash(hash string) bool {
	if !isBcryptHash(hash) {
		return true
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}

	return cost < p.cost
}

// isBcryptHash detects the modular crypt prefixes emitted by bcrypt
// implementations ($2a$, $2b$, $2x$, $2y$).
func isBcryptHash(hash string) bool {
	return len(hash) > 4 && strings.HasPrefix(hash, "$2") && hash[3] == '$'
}

// verifyLegacy checks plaintext against "iterations.saltBase64.keyBase64",
// a PBKDF2-HMAC-SHA256 derivation whose key length equals the stored key.
func verifyLegacy(plaintext, hash string) bool {
	parts := strings.Split(hash, legacySeparator)
	if len(parts) != 3 {
		return false
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations < 1 || iterations > legacyMaxIterations {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return false
	}

	key, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return false
	}

	derived := pbkdf2.Key([]byte(plaintext), salt, iterations, len(key), sha256.New)

	return subtle.ConstantTimeCompare(derived, key) == 1
}
