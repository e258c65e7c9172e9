// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Person is a natural-person record (Persoana).
type Person struct {
	ID             string     `json:"id"`
	LastName       string     `json:"nume"`
	FirstName      string     `json:"prenume"`
	CNP            string     `json:"cnp"`
	BirthDate      *time.Time `json:"dataNasterii,omitempty"`
	Sex            string     `json:"sex"`
	Phone          string     `json:"telefon"`
	Email          string     `json:"email"`
	County         string     `json:"judet"`
	Locality       string     `json:"localitate"`
	Address        string     `json:"adresa"`
	DocumentType   string     `json:"tipActIdentitate"`
	DocumentSeries string     `json:"serieAct"`
	DocumentNumber string     `json:"numarAct"`
	IsActive       bool       `json:"esteActiv"`

	CreatedAt time.Time `json:"dataCreare"`
	UpdatedAt time.Time `json:"dataUltimeiModificari"`
	CreatedBy string    `json:"creatDe,omitempty"`
	UpdatedBy string    `json:"modificatDe,omitempty"`
}

// FullName returns "LastName FirstName", the display order used across the UI.
func (p Person) FullName() string {
	switch {
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	default:
		return p.LastName + " " + p.FirstName
	}
}

// PersonFilter narrows the persons grid.
type PersonFilter struct {
	Search   string `json:"search"`
	County   string `json:"judet"`
	Locality string `json:"localitate"`
	Sex      string `json:"sex"`
	IsActive *bool  `json:"esteActiv"`
}

// PersonFields are the grid properties persons can be sorted and grouped by.
var PersonFields = FieldSet{"nume", "prenume", "cnp", "judet", "localitate", "sex", "esteActiv", "dataNasterii", "dataCreare"}
