// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	query, err := parseSearchQuery(values)
	if err != nil {
		h.writeError(w, r, err, "invalid persons query")
		return
	}
	isActive, err := boolParam(values, "esteActiv")
	if err != nil {
		h.writeError(w, r, err, "invalid persons query")
		return
	}

	filter := models.PersonFilter{
		Search:   strings.TrimSpace(values.Get("search")),
		County:   strings.TrimSpace(values.Get("judet")),
		Locality: strings.TrimSpace(values.Get("localitate")),
		Sex:      strings.TrimSpace(values.Get("sex")),
		IsActive: isActive,
	}

	result, err := h.services.PersonService.Query(r.Context(), filter, query)
	if err != nil {
		h.writeError(w, r, err, "error querying persons")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.services.PersonService.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err, "error getting person")
		return
	}

	h.writeData(w, r, person, "", http.StatusOK)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error creating person")
		return
	}

	var person models.Person
	if err = decodeBody(r, &person); err != nil {
		h.writeError(w, r, err, "error decoding person")
		return
	}

	created, err := h.services.PersonService.Create(r.Context(), p, person)
	if err != nil {
		h.writeError(w, r, err, "error creating person")
		return
	}

	w.Header().Set("Location", "/api/persoane/"+created.ID)
	h.writeData(w, r, created, "person created", http.StatusCreated)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error updating person")
		return
	}

	var person models.Person
	if err = decodeBody(r, &person); err != nil {
		h.writeError(w, r, err, "error decoding person")
		return
	}

	updated, err := h.services.PersonService.Update(r.Context(), p, idParam(r), person)
	if err != nil {
		h.writeError(w, r, err, "error updating person")
		return
	}

	h.writeData(w, r, updated, "person updated", http.StatusOK)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error deleting person")
		return
	}

	if err = h.services.PersonService.Delete(r.Context(), p, idParam(r)); err != nil {
		h.writeError(w, r, err, "error deleting person")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "person deleted"}, http.StatusOK)
}
