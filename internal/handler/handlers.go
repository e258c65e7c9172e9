// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/handler/http"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. The REST API is
// the only transport, so an empty listen address is a misconfiguration.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
