// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *httpMetrics

	logger *logger.Logger
}

// NewHandler creates a Handler with its own metrics registry, so several
// handlers can live in one process (tests) without registration conflicts.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newHTTPMetrics(prometheus.NewRegistry()),
		logger:   logger,
	}
}
