// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server section has no
// address, since the REST API is the only surface.
var errNoHTTPAddress = errors.New("server address is not configured, no handlers to build")
