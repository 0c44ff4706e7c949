package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrForbidden               = errors.New("role is not allowed to change the schema")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidVersion        = errors.New("app version is not a semantic version")

	ErrNotFound           = errors.New("entity not found")
	ErrValidation         = errors.New("entity has blocking validation errors")
	ErrIdentifierConflict = errors.New("identifier is reserved or already in use")
	ErrStillReferenced    = errors.New("entity is still referenced")

	ErrStorageUnavailable = errors.New("storage is unavailable")

	ErrInvalidImage        = errors.New("invalid image")
	ErrUnknownExportFormat = errors.New("unknown export format")
)

// ValidationError carries the validation result that blocked a save.
// It unwraps to ErrValidation, or to ErrIdentifierConflict when the
// identifier was the problem.
type ValidationError struct {
	Result schema.Result

	err error
}

// NewValidationError wraps a blocking validation result.
func NewValidationError(res schema.Result) *ValidationError {
	err := ErrValidation
	if res.HasCode(schema.CodeIdentifierInUse) || res.HasCode(schema.CodeIdentifierReserved) {
		err = ErrIdentifierConflict
	}
	return &ValidationError{Result: res, err: err}
}

func (e *ValidationError) Error() string {
	if len(e.Result.Errors) == 0 {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err, e.Result.Errors[0])
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// ReferencedError lists the entities that still point at a deleted one.
// It unwraps to ErrStillReferenced.
type ReferencedError struct {
	ID         string
	References []string
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("%s: %s is used by %v", ErrStillReferenced, e.ID, e.References)
}

func (e *ReferencedError) Unwrap() error {
	return ErrStillReferenced
}
