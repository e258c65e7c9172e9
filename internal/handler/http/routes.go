// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecover)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/validate-token", h.validateToken)
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Route("/api/utilizatori", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/api/persoane", func(r chi.Router) {
			r.Get("/", h.listPersons)
			r.Post("/", h.createPerson)
			r.Get("/{id}", h.getPerson)
			r.Put("/{id}", h.updatePerson)
			r.Delete("/{id}", h.deletePerson)
		})

		r.Route("/api/Location", func(r chi.Router) {
			r.Get("/judete", h.listCounties)
			r.Get("/localitati", h.listLocalities)
			r.Get("/localitati/judet/{name}", h.listLocalitiesByCountyName)
			r.Get("/localitati/judet-id/{id}", h.listLocalitiesByCountyID)
			r.Get("/judete-cu-localitati", h.listCountiesWithLocalities)
		})

		r.Route("/api/personal-medical", func(r chi.Router) {
			r.Get("/", h.listMedicalStaff)
			r.Post("/", h.createMedicalStaff)
			r.Post("/grid", h.medicalStaffGrid)
			r.Post("/summary", h.medicalStaffSummary)
			r.Get("/lookup", h.medicalStaffLookup)
			r.Get("/{id}", h.getMedicalStaff)
			r.Put("/{id}", h.updateMedicalStaff)
			r.Delete("/{id}", h.deleteMedicalStaff)
		})
	})

	return router
}

// allowedOrigins falls back to any origin when none is configured, which
// only suits local development.
func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.CORSAllowedOrigins
}
