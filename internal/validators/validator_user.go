// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// Field names accepted by [UserValidator]. They match the JSON names of the
// request payloads so messages can be shown next to the offending input.
const (
	FieldPersonID   = "persoanaId"
	FieldUsername   = "numeUtilizator"
	FieldEmail      = "email"
	FieldPassword   = "parola"
	FieldRole       = "rol"
	FieldIdentifier = "numeUtilizatorSauEmail"
)

// UserValidator checks account payloads and login requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdate(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreate(req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPersonID, FieldUsername, FieldEmail, FieldPassword, FieldRole}
	}

	errs := &FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldPersonID:
			switch {
			case isBlank(req.PersonID):
				errs.add("persoanaId is required")
			case !utils.IsUUID(req.PersonID):
				errs.add("persoanaId must be a valid identifier")
			}
		case FieldUsername:
			checkUsername(errs, req.Username)
		case FieldEmail:
			checkRequiredEmail(errs, req.Email)
		case FieldPassword:
			checkPassword(errs, req.Password, true)
		case FieldRole:
			checkRole(errs, req.Role)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *UserValidator) validateUpdate(req models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	errs := &FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkRequiredEmail(errs, req.Email)
		case FieldPassword:
			checkPassword(errs, req.Password, false)
		case FieldRole:
			checkRole(errs, req.Role)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// validateLogin only checks presence. Format checks here would tell a caller
// which part of the credentials was wrong.
func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPassword}
	}

	errs := &FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if isBlank(req.Identifier) {
				errs.add("numeUtilizatorSauEmail is required")
			}
		case FieldPassword:
			if req.Password == "" {
				errs.add("parola is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func checkUsername(errs *FieldErrors, username string) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		errs.add("numeUtilizator is required")
	case len(username) < minUsernameLength || len(username) > maxUsernameLength:
		errs.add(fmt.Sprintf("numeUtilizator must be between %d and %d characters", minUsernameLength, maxUsernameLength))
	case !usernamePattern.MatchString(username):
		errs.add("numeUtilizator may contain only letters, digits, '.', '_' and '-'")
	}
}

func checkRequiredEmail(errs *FieldErrors, email string) {
	switch {
	case isBlank(email):
		errs.add("email is required")
	case !isEmail(email):
		errs.add("email is not a valid address")
	}
}

func checkOptionalEmail(errs *FieldErrors, email string) {
	if !isBlank(email) && !isEmail(email) {
		errs.add("email is not a valid address")
	}
}

func checkPassword(errs *FieldErrors, password string, required bool) {
	switch {
	case password == "" && required:
		errs.add("parola is required")
	case password != "" && len([]rune(password)) < minPasswordLength:
		errs.add(fmt.Sprintf("parola must have at least %d characters", minPasswordLength))
	}
}

func checkRole(errs *FieldErrors, role string) {
	switch {
	case isBlank(role):
		errs.add("rol is required")
	case !contains(models.UserRoles, strings.TrimSpace(role)):
		errs.add(fmt.Sprintf("rol must be one of: %s", strings.Join(models.UserRoles, ", ")))
	}
}
