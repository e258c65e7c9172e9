// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCounties(w http.ResponseWriter, r *http.Request) {
	counties, err := h.services.LocationService.Counties(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing counties")
		return
	}
	h.writeData(w, r, counties, "", http.StatusOK)
}

func (h *Handler) listLocalities(w http.ResponseWriter, r *http.Request) {
	localities, err := h.services.LocationService.Localities(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing localities")
		return
	}
	h.writeData(w, r, localities, "", http.StatusOK)
}

func (h *Handler) listLocalitiesByCountyName(w http.ResponseWriter, r *http.Request) {
	localities, err := h.services.LocationService.LocalitiesByCountyName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err, "error listing localities by county name")
		return
	}
	h.writeData(w, r, localities, "", http.StatusOK)
}

func (h *Handler) listLocalitiesByCountyID(w http.ResponseWriter, r *http.Request) {
	countyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: county id must be an integer", ErrInvalidQueryParameter), "invalid county id")
		return
	}

	localities, err := h.services.LocationService.LocalitiesByCountyID(r.Context(), countyID)
	if err != nil {
		h.writeError(w, r, err, "error listing localities by county id")
		return
	}
	h.writeData(w, r, localities, "", http.StatusOK)
}

func (h *Handler) listCountiesWithLocalities(w http.ResponseWriter, r *http.Request) {
	counties, err := h.services.LocationService.CountiesWithLocalities(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing counties with localities")
		return
	}
	h.writeData(w, r, counties, "", http.StatusOK)
}
