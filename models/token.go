// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of an access token. Subject carries the user id.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"unique_name"`
	Email    string `json:"email"`
	FullName string `json:"name"`
}

// UserID returns the subject claim.
func (c Claims) UserID() string {
	return c.Subject
}

// ExpiresAtTime returns the expiry claim or the zero time when absent.
func (c Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Token is a freshly signed access token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string
	Claims       Claims
}

// String returns the compact serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the expiry instant of the token.
func (t Token) ExpiresAt() time.Time {
	return t.Claims.ExpiresAtTime()
}
