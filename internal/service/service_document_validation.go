package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
)

// DocumentValidationService checks request shapes and sanitizes texts
// before handing entities to the wrapped DocumentService.
type DocumentValidationService[T any] struct {
	inner     DocumentService[T]
	validator validators.Validator
	sanitize  func(T) T
}

func NewDocumentValidationService[T any](validator validators.Validator, sanitize func(T) T) DocumentServiceWrapper[T] {
	return &DocumentValidationService[T]{
		validator: validator,
		sanitize:  sanitize,
	}
}

func (v *DocumentValidationService[T]) List(ctx context.Context) ([]T, error) {
	return v.inner.List(ctx)
}

func (v *DocumentValidationService[T]) Get(ctx context.Context, id string) (T, error) {
	if err := v.validator.Validate(ctx, validators.EntityID(id)); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Get(ctx, id)
}

func (v *DocumentValidationService[T]) Save(ctx context.Context, entity T) (T, schema.Result, error) {
	if err := v.validator.Validate(ctx, entity); err != nil {
		var zero T
		return zero, schema.Result{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Save(ctx, v.sanitize(entity))
}

func (v *DocumentValidationService[T]) Validate(ctx context.Context, entity T) (schema.Result, error) {
	if err := v.validator.Validate(ctx, entity); err != nil {
		return schema.Result{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Validate(ctx, v.sanitize(entity))
}

func (v *DocumentValidationService[T]) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, validators.EntityID(id)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *DocumentValidationService[T]) Wrap(inner DocumentService[T]) DocumentService[T] {
	v.inner = inner
	return v
}
