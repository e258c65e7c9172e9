// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the clinic API server and of the
// command-line client.
//
// The server configuration is merged from three sources, later ones winning
// over earlier non-zero fields:
//  1. Environment variables (APP_*, STORAGE_*, SERVER_*, QUERY_*)
//  2. Command-line flags
//  3. The JSON file named by CONFIG or -c
//
// Whatever is still unset takes the value from [Defaults], after which the
// result is validated; a missing token signing key or database DSN stops the
// server at startup. [GetStructuredConfig] is the server entry point and
// [GetClientConfig] reads the CLIENT_* variables of the command-line client.
package config
