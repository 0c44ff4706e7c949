// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the admin client to talk to
// the portal server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Failed responses are mapped by mapHTTPError to a [*ServerError] that wraps
// one of the sentinel values defined in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrValidation] for 422) and
// [errors.As] to reach the validation result or the list of references.
package adapter

import (
	"context"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the portal server. Implementations
// are responsible for serialisation, the bearer token and mapping failed
// responses to the sentinel errors of this package.
type ServerAdapter interface {
	// SetServerURL points the adapter at another server. The address may omit
	// the scheme, in which case http is assumed.
	SetServerURL(raw string) error

	// ServerURL returns the normalized base URL currently in use.
	ServerURL() string

	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token logs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string

	// ServerVersion returns the semantic version reported by GET /version.
	ServerVersion(ctx context.Context) (string, error)

	// Health returns nil when GET /health reports the server as serving.
	Health(ctx context.Context) error

	// Login signs the administrator in. On success the returned access token
	// is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// FetchSchema downloads a full snapshot of the study schema.
	FetchSchema(ctx context.Context) (models.SchemaBundle, error)

	// Export downloads the encoded schema in the given format ("yaml" or
	// "json").
	Export(ctx context.Context, format string) ([]byte, error)

	// Validate runs the server side validation of entity without storing it.
	Validate(ctx context.Context, res Resource, entity any) (schema.Result, error)

	// Delete removes the entity with id. A [*ServerError] wrapping
	// [ErrConflict] lists the entities still referencing it.
	Delete(ctx context.Context, res Resource, id string) error

	// CheckIdentifier asks the server whether identifier may be used for a
	// new entity, or for the entity currently named original.
	CheckIdentifier(ctx context.Context, res Resource, identifier, original string) (models.IdentifierCheckResponse, error)

	// FoodGraph analyzes the food screen graph starting at initial.
	FoodGraph(ctx context.Context, initial string) (schema.FoodGraphReport, error)
}
