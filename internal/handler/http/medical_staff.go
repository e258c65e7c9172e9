// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// medicalStaffSummaryRequest is the body of POST /api/personal-medical/summary.
type medicalStaffSummaryRequest struct {
	models.MedicalStaffFilter
	Groups []models.GroupDescriptor `json:"groups"`
}

func medicalStaffFilterFromQuery(values url.Values) (models.MedicalStaffFilter, error) {
	isActive, err := boolParam(values, "esteActiv")
	if err != nil {
		return models.MedicalStaffFilter{}, err
	}

	get := func(name string) string { return strings.TrimSpace(values.Get(name)) }

	return models.MedicalStaffFilter{
		Search:        get("search"),
		Department:    get("departament"),
		Position:      get("pozitie"),
		IsActive:      isActive,
		LastName:      get("nume"),
		FirstName:     get("prenume"),
		Specialty:     get("specializare"),
		LicenseNumber: get("numarLicenta"),
		Phone:         get("telefon"),
		Email:         get("email"),
	}, nil
}

func (h *Handler) listMedicalStaff(w http.ResponseWriter, r *http.Request) {
	h.queryMedicalStaff(w, r, h.services.MedicalStaffService.Query)
}

// medicalStaffLookup feeds dropdowns; it accepts the same parameters as the
// list but with the bulk page size ceiling.
func (h *Handler) medicalStaffLookup(w http.ResponseWriter, r *http.Request) {
	h.queryMedicalStaff(w, r, h.services.MedicalStaffService.Lookup)
}

type medicalStaffQueryFunc func(ctx context.Context, filter models.MedicalStaffFilter, query models.SearchQuery) (models.PagedResult[models.MedicalStaff], error)

func (h *Handler) queryMedicalStaff(w http.ResponseWriter, r *http.Request, run medicalStaffQueryFunc) {
	values := r.URL.Query()

	query, err := parseSearchQuery(values)
	if err != nil {
		h.writeError(w, r, err, "invalid medical staff query")
		return
	}
	filter, err := medicalStaffFilterFromQuery(values)
	if err != nil {
		h.writeError(w, r, err, "invalid medical staff query")
		return
	}

	result, err := run(r.Context(), filter, query)
	if err != nil {
		h.writeError(w, r, err, "error querying medical staff")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) medicalStaffGrid(w http.ResponseWriter, r *http.Request) {
	var req models.MedicalStaffGridRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, "error decoding medical staff grid request")
		return
	}

	result, err := h.services.MedicalStaffService.Query(r.Context(), req.MedicalStaffFilter, req.SearchQuery)
	if err != nil {
		h.writeError(w, r, err, "error querying medical staff grid")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) medicalStaffSummary(w http.ResponseWriter, r *http.Request) {
	var req medicalStaffSummaryRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, "error decoding medical staff summary request")
		return
	}

	summary, err := h.services.MedicalStaffService.Summary(r.Context(), req.MedicalStaffFilter, req.Groups)
	if err != nil {
		h.writeError(w, r, err, "error summarizing medical staff")
		return
	}

	h.writeData(w, r, summary, "", http.StatusOK)
}

func (h *Handler) getMedicalStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.services.MedicalStaffService.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err, "error getting medical staff")
		return
	}

	h.writeData(w, r, staff, "", http.StatusOK)
}

func (h *Handler) createMedicalStaff(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error creating medical staff")
		return
	}

	var staff models.MedicalStaff
	if err = decodeBody(r, &staff); err != nil {
		h.writeError(w, r, err, "error decoding medical staff")
		return
	}

	created, err := h.services.MedicalStaffService.Create(r.Context(), p, staff)
	if err != nil {
		h.writeError(w, r, err, "error creating medical staff")
		return
	}

	w.Header().Set("Location", "/api/personal-medical/"+created.ID)
	h.writeData(w, r, created, "medical staff created", http.StatusCreated)
}

func (h *Handler) updateMedicalStaff(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error updating medical staff")
		return
	}

	var staff models.MedicalStaff
	if err = decodeBody(r, &staff); err != nil {
		h.writeError(w, r, err, "error decoding medical staff")
		return
	}

	updated, err := h.services.MedicalStaffService.Update(r.Context(), p, idParam(r), staff)
	if err != nil {
		h.writeError(w, r, err, "error updating medical staff")
		return
	}

	h.writeData(w, r, updated, "medical staff updated", http.StatusOK)
}

func (h *Handler) deleteMedicalStaff(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error deleting medical staff")
		return
	}

	if err = h.services.MedicalStaffService.Delete(r.Context(), p, idParam(r)); err != nil {
		h.writeError(w, r, err, "error deleting medical staff")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "medical staff deleted"}, http.StatusOK)
}
