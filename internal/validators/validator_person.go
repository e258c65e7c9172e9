// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyan/clinic-manager/models"
)

const (
	FieldLastName  = "nume"
	FieldFirstName = "prenume"
	FieldCNP       = "cnp"
	FieldSex       = "sex"
	FieldBirthDate = "dataNasterii"
)

var allowedSexes = []string{"M", "F"}

// PersonValidator checks person records before they are stored.
type PersonValidator struct {
	now func() time.Time
}

func NewPersonValidator() Validator {
	return &PersonValidator{now: time.Now}
}

func (v *PersonValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Person:
		return v.validatePerson(value, fields...)
	case *models.Person:
		return v.validatePerson(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PersonValidator) validatePerson(p models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLastName, FieldFirstName, FieldCNP, FieldSex, FieldEmail, FieldBirthDate}
	}

	errs := &FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldLastName:
			checkName(errs, FieldLastName, p.LastName)
		case FieldFirstName:
			checkName(errs, FieldFirstName, p.FirstName)
		case FieldCNP:
			// CNP is optional for foreigners and newborns without documents.
			if cnp := strings.TrimSpace(p.CNP); cnp != "" && !IsValidCNP(cnp) {
				errs.add("cnp must have 13 digits and a valid control digit")
			}
		case FieldSex:
			if sex := strings.TrimSpace(p.Sex); sex != "" && !contains(allowedSexes, strings.ToUpper(sex)) {
				errs.add("sex must be M or F")
			}
		case FieldEmail:
			checkOptionalEmail(errs, p.Email)
		case FieldBirthDate:
			if p.BirthDate != nil && p.BirthDate.After(v.now()) {
				errs.add("dataNasterii cannot be in the future")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func checkName(errs *FieldErrors, field, value string) {
	switch {
	case isBlank(value):
		errs.add(field + " is required")
	case tooLong(value, maxNameLength):
		errs.add(fmt.Sprintf("%s must have at most %d characters", field, maxNameLength))
	}
}
