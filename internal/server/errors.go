// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPHandler is returned by NewServer when there is no router to
	// serve or no address to bind it to.
	errNoHTTPHandler = errors.New("http handler or address is not configured")

	// errServerNotInitialized is returned by Run on a zero-value server.
	errServerNotInitialized = errors.New("http server is not initialized")
)
