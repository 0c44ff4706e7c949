// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming requests before they
// reach the schema services.
//
// The checks here are structural: ids must be well formed, required request
// fields must be present and enumerated values must be known. Whether an
// entity may be saved is decided by package schema against the stored
// schema, not here.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
