// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/service"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPAddress)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentMetrics(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	first, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	second, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, first.HTTP, second.HTTP)
}
