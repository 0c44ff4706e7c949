// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means neither the REST nor the gRPC address is
	// configured, so the portal has nothing to serve.
	errNoHandlersAreCreated = errors.New("no handlers are created")
	errNilServices          = errors.New("handlers need services")
)
