// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// listUsers serves the users grid. Filters: search, rol, esteActiv.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	query, err := parseSearchQuery(values)
	if err != nil {
		h.writeError(w, r, err, "invalid users query")
		return
	}
	isActive, err := boolParam(values, "esteActiv")
	if err != nil {
		h.writeError(w, r, err, "invalid users query")
		return
	}

	filter := models.UserFilter{
		Search:   strings.TrimSpace(values.Get("search")),
		Role:     strings.TrimSpace(values.Get("rol")),
		IsActive: isActive,
	}

	result, err := h.services.UserService.Query(r.Context(), filter, query)
	if err != nil {
		h.writeError(w, r, err, "error querying users")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), idParam(r))
	if err != nil {
		h.writeError(w, r, err, "error getting user")
		return
	}

	h.writeData(w, r, user, "", http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error creating user")
		return
	}

	var req models.CreateUserRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, "error decoding user")
		return
	}

	user, err := h.services.UserService.Create(r.Context(), p, req)
	if err != nil {
		h.writeError(w, r, err, "error creating user")
		return
	}

	w.Header().Set("Location", "/api/utilizatori/"+user.ID)
	h.writeData(w, r, user, "user created", http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error updating user")
		return
	}

	var req models.UpdateUserRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, "error decoding user")
		return
	}

	user, err := h.services.UserService.Update(r.Context(), p, idParam(r), req)
	if err != nil {
		h.writeError(w, r, err, "error updating user")
		return
	}

	h.writeData(w, r, user, "user updated", http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err, "error deleting user")
		return
	}

	if err = h.services.UserService.Delete(r.Context(), p, idParam(r)); err != nil {
		h.writeError(w, r, err, "error deleting user")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "user deleted"}, http.StatusOK)
}
