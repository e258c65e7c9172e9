// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// withRecover turns a panic in any handler into the generic JSON 500 reply.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: []string{internalErrorMessage}}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
