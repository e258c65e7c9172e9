// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the clinic API.
//
// It wires the chi router, the middleware chain (trace id, access log,
// metrics, CORS, timeout, panic recovery, bearer authentication) and the
// handlers for authentication, users, persons, locations and medical staff.
// Service errors are translated into status codes in one place, see
// errorStatusMap.
package http
