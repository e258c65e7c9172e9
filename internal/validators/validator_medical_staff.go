// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

const (
	FieldDepartment    = "departament"
	FieldLicenseNumber = "numarLicenta"
)

const maxLicenseNumberLength = 50

// MedicalStaffValidator checks medical staff records.
type MedicalStaffValidator struct{}

func NewMedicalStaffValidator() Validator {
	return &MedicalStaffValidator{}
}

func (v *MedicalStaffValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MedicalStaff:
		return v.validateMedicalStaff(value, fields...)
	case *models.MedicalStaff:
		return v.validateMedicalStaff(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *MedicalStaffValidator) validateMedicalStaff(s models.MedicalStaff, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLastName, FieldFirstName, FieldDepartment, FieldEmail, FieldLicenseNumber, FieldPersonID}
	}

	errs := &FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldLastName:
			checkName(errs, FieldLastName, s.LastName)
		case FieldFirstName:
			checkName(errs, FieldFirstName, s.FirstName)
		case FieldDepartment:
			checkName(errs, FieldDepartment, s.Department)
		case FieldEmail:
			checkOptionalEmail(errs, s.Email)
		case FieldLicenseNumber:
			if tooLong(s.LicenseNumber, maxLicenseNumberLength) {
				errs.add(fmt.Sprintf("numarLicenta must have at most %d characters", maxLicenseNumberLength))
			}
		case FieldPersonID:
			if !isBlank(s.PersonID) && !utils.IsUUID(s.PersonID) {
				errs.add("persoanaId must be a valid identifier")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
