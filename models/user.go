// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a login credential (Utilizator) bound to exactly one Person.
// PasswordHash is never serialized.
type User struct {
	ID       string `json:"id"`
	PersonID string `json:"persoanaId"`
	Username string `json:"numeUtilizator"`
	Email    string `json:"email"`
	Role     string `json:"rol"`
	IsActive bool   `json:"esteActiv"`
	FullName string `json:"numeComplet,omitempty"`

	PasswordHash string `json:"-"`

	LastLoginAt *time.Time `json:"dataUltimeiAutentificari,omitempty"`
	CreatedAt   time.Time  `json:"dataCreare"`
	UpdatedAt   time.Time  `json:"dataUltimeiModificari"`
	CreatedBy   string     `json:"creatDe,omitempty"`
	UpdatedBy   string     `json:"modificatDe,omitempty"`
}

// CreateUserRequest is the payload of POST /api/utilizatori.
type CreateUserRequest struct {
	PersonID string `json:"persoanaId"`
	Username string `json:"numeUtilizator"`
	Email    string `json:"email"`
	Password string `json:"parola"`
	Role     string `json:"rol"`
}

// UpdateUserRequest is the payload of PUT /api/utilizatori/{id}.
// A non-empty Password replaces the stored credential.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Role     string `json:"rol"`
	IsActive *bool  `json:"esteActiv,omitempty"`
	Password string `json:"parola,omitempty"`
}

// UserFilter narrows the users grid.
type UserFilter struct {
	Search   string `json:"search"`
	Role     string `json:"rol"`
	IsActive *bool  `json:"esteActiv"`
}

// Principal is the authenticated caller, passed explicitly into service
// calls that record who changed what.
type Principal struct {
	UserID   string
	Username string
}

// Known user roles.
const (
	RoleAdmin        = "Administrator"
	RoleDoctor       = "Medic"
	RoleNurse        = "Asistent"
	RoleReceptionist = "Receptie"
	RoleManager      = "Manager"
)

// UserRoles lists the roles accepted on user create and update.
var UserRoles = []string{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RoleManager}

// UserFields are the grid properties users can be sorted and grouped by.
var UserFields = FieldSet{"numeUtilizator", "email", "rol", "esteActiv", "dataCreare", "dataUltimeiAutentificari"}
