// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/client"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong username or password, or the session has expired"
	case errors.Is(err, adapter.ErrForbidden), errors.Is(err, client.ErrNotAdministrator):
		return "Only administrators may edit the study schema"
	case errors.Is(err, adapter.ErrIncompatibleServer):
		return "The server runs an incompatible version: " + err.Error()
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "The server is temporarily unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unreachable"
	}

	return err.Error()
}

// referencesOf returns the entities that blocked a delete.
func referencesOf(err error) []string {
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.References
	}
	return nil
}
