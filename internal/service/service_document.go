// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// IDGenerator hands out permanent ids for new entities.
type IDGenerator interface {
	Generate() string
}

// documentRules describes how one entity kind is identified, validated and
// referenced.
type documentRules[T any] struct {
	kind string

	id         func(T) string
	withID     func(T, string) T
	identifier func(T) string

	// normalize runs on accepted entities right before they are stored.
	// May be nil.
	normalize func(snapshot, T) T

	validate func(s snapshot, entity T, original string) schema.Result

	// references lists the ids of entities pointing at id. May be nil.
	references func(s snapshot, id string) []string
}

// documentService implements DocumentService on top of a DocumentRepository.
// Reference checks run against a fresh snapshot of the stored schema since
// the documents carry no foreign keys.
type documentService[T any] struct {
	repository store.DocumentRepository[T]
	snapshots  SnapshotLoader
	ids        IDGenerator
	rules      documentRules[T]

	logger *logger.Logger
}

func newDocumentService[T any](repository store.DocumentRepository[T], snapshots SnapshotLoader, ids IDGenerator, rules documentRules[T], logger *logger.Logger) *documentService[T] {
	return &documentService[T]{
		repository: repository,
		snapshots:  snapshots,
		ids:        ids,
		rules:      rules,
		logger:     logger,
	}
}

func (s *documentService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.List").Str("kind", s.rules.kind).Msg("listing failed")
		return nil, fmt.Errorf("error listing %s: %w", s.rules.kind, err)
	}
	return items, nil
}

func (s *documentService[T]) Get(ctx context.Context, id string) (T, error) {
	item, err := s.repository.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, s.mapStoreError(err)
	}
	return item, nil
}

func (s *documentService[T]) Save(ctx context.Context, entity T) (T, schema.Result, error) {
	log := logger.FromContext(ctx)
	var zero T

	entity, original, err := s.resolve(ctx, entity)
	if err != nil {
		return zero, schema.Result{}, err
	}

	snap, err := loadSnapshot(ctx, s.snapshots)
	if err != nil {
		log.Err(err).Str("func", "*documentService.Save").Msg("error loading schema snapshot")
		return zero, schema.Result{}, err
	}

	res := s.rules.validate(snap, entity, original)
	if !res.OK() {
		log.Info().
			Str("func", "*documentService.Save").
			Str("kind", s.rules.kind).
			Str("id", s.rules.id(entity)).
			Int("errors", len(res.Errors)).
			Msg("entity rejected")
		return zero, res, NewValidationError(res)
	}
	if s.rules.normalize != nil {
		entity = s.rules.normalize(snap, entity)
	}

	saved, err := s.repository.Upsert(ctx, entity)
	if err != nil {
		log.Err(err).Str("func", "*documentService.Save").Str("kind", s.rules.kind).Msg("error saving entity")
		return zero, res, s.mapStoreError(err)
	}

	return saved, res, nil
}

func (s *documentService[T]) Validate(ctx context.Context, entity T) (schema.Result, error) {
	original := ""
	if id := s.rules.id(entity); !models.IsNewElementID(id) {
		stored, err := s.repository.Get(ctx, id)
		switch {
		case err == nil:
			original = s.rules.identifier(stored)
		case !errors.Is(err, store.ErrNotFound):
			return schema.Result{}, s.mapStoreError(err)
		}
	}

	snap, err := loadSnapshot(ctx, s.snapshots)
	if err != nil {
		return schema.Result{}, err
	}

	return s.rules.validate(snap, entity, original), nil
}

func (s *documentService[T]) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if s.rules.references != nil {
		snap, err := loadSnapshot(ctx, s.snapshots)
		if err != nil {
			return err
		}
		if refs := s.rules.references(snap, id); len(refs) > 0 {
			log.Info().Str("func", "*documentService.Delete").Str("id", id).Strs("references", refs).Msg("entity is still referenced")
			return &ReferencedError{ID: id, References: refs}
		}
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*documentService.Delete").Str("kind", s.rules.kind).Str("id", id).Msg("error deleting entity")
		return s.mapStoreError(err)
	}
	return nil
}

// resolve assigns an id to new entities and returns the identifier a stored
// entity had before editing.
func (s *documentService[T]) resolve(ctx context.Context, entity T) (T, string, error) {
	id := s.rules.id(entity)
	if models.IsNewElementID(id) {
		return s.rules.withID(entity, s.ids.Generate()), "", nil
	}

	stored, err := s.repository.Get(ctx, id)
	if err != nil {
		return entity, "", s.mapStoreError(err)
	}
	return entity, s.rules.identifier(stored), nil
}

func (s *documentService[T]) mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, s.rules.kind, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrIdentifierConflict, err)
	case errors.Is(err, store.ErrStillReferenced):
		return fmt.Errorf("%w: %w", ErrStillReferenced, err)
	}
	return err
}

func mergeResults(results ...schema.Result) schema.Result {
	res := schema.Result{Errors: []schema.Issue{}, Warnings: []schema.Issue{}}
	for _, r := range results {
		res.Errors = append(res.Errors, r.Errors...)
		res.Warnings = append(res.Warnings, r.Warnings...)
	}
	return res
}
