package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrUnsupportedResource = errors.New("unsupported resource")
	ErrIncompatibleServer  = errors.New("incompatible server version")
	ErrInvalidResponse     = errors.New("invalid server response")
)
