// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// County is a Romanian county (Judet).
type County struct {
	ID   int64  `json:"id"`
	Code string `json:"cod"`
	Name string `json:"nume"`
}

// Locality is a city, town or commune (Localitate) inside a county.
type Locality struct {
	ID       int64  `json:"id"`
	CountyID int64  `json:"judetId"`
	Name     string `json:"nume"`
	Kind     string `json:"tip,omitempty"`
}

// CountyWithLocalities is a county together with all of its localities.
type CountyWithLocalities struct {
	County
	Localities []Locality `json:"localitati"`
}
