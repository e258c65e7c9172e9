// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest is the body of POST /api/auth/login. Identifier is either a
// username or an email address.
type LoginRequest struct {
	Identifier string `json:"numeUtilizatorSauEmail"`
	Password   string `json:"parola"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	ID         string    `json:"id"`
	Username   string    `json:"numeUtilizator"`
	Email      string    `json:"email"`
	FullName   string    `json:"numeComplet"`
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// Identity is the set of user attributes embedded into an issued token.
type Identity struct {
	UserID   string
	Username string
	Email    string
	FullName string
}

// TokenValidationResult is the body returned by POST /api/auth/validate-token.
type TokenValidationResult struct {
	IsValid bool `json:"isValid"`
}
