// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// gracefully. It returns an error when the listener cannot be started.
	RunServer() error

	// Run is RunServer bound to ctx instead of process signals.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
