// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MedicalStaff is a member of the medical personnel (PersonalMedical).
type MedicalStaff struct {
	ID            string `json:"id"`
	PersonID      string `json:"persoanaId,omitempty"`
	LastName      string `json:"nume"`
	FirstName     string `json:"prenume"`
	Specialty     string `json:"specializare"`
	LicenseNumber string `json:"numarLicenta"`
	Phone         string `json:"telefon"`
	Email         string `json:"email"`
	Department    string `json:"departament"`
	Position      string `json:"pozitie"`
	IsActive      bool   `json:"esteActiv"`

	CreatedAt time.Time `json:"dataCreare"`
	UpdatedAt time.Time `json:"dataUltimeiModificari"`
	CreatedBy string    `json:"creatDe,omitempty"`
	UpdatedBy string    `json:"modificatDe,omitempty"`
}

// MedicalStaffFilter holds the grid filters. Every non-empty field is
// combined with AND; the column filters match partially.
type MedicalStaffFilter struct {
	Search     string `json:"search"`
	Department string `json:"departament"`
	Position   string `json:"pozitie"`
	IsActive   *bool  `json:"esteActiv"`

	LastName      string `json:"nume"`
	FirstName     string `json:"prenume"`
	Specialty     string `json:"specializare"`
	LicenseNumber string `json:"numarLicenta"`
	Phone         string `json:"telefon"`
	Email         string `json:"email"`
}

// MedicalStaffGridRequest is the body of POST /api/personal-medical/grid.
type MedicalStaffGridRequest struct {
	MedicalStaffFilter
	SearchQuery
}

// MedicalStaffFields are the grid properties medical staff can be sorted and
// grouped by.
var MedicalStaffFields = FieldSet{
	"nume", "prenume", "specializare", "numarLicenta", "telefon", "email",
	"departament", "pozitie", "esteActiv", "dataCreare", "dataUltimeiModificari",
}
