// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrRoleNotAllowed is reported when a valid token carries a role that
	// may not use the requested route.
	ErrRoleNotAllowed = errors.New("role is not allowed to use this route")

	// ErrInvalidJSON is reported for request bodies that do not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	ErrMissingImageFile = errors.New("multipart field `image_file` is missing")
)
