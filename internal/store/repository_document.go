// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// documentRepository stores entities of type T as JSONB documents in one
// table with the columns id, identifier, doc and updated_at.
type documentRepository[T any] struct {
	*DB
	table string

	idOf         func(T) string
	identifierOf func(T) *string

	logger *logger.Logger
}

func newDocumentRepository[T any](db *DB, table string, idOf func(T) string, identifierOf func(T) *string, log *logger.Logger) *documentRepository[T] {
	log.Debug().Str("table", table).Msg("creating document repository")
	return &documentRepository[T]{
		DB:           db,
		table:        table,
		idOf:         idOf,
		identifierOf: identifierOf,
		logger:       log,
	}
}

func identifierPtr(identifier string) *string {
	return &identifier
}

func noIdentifier[T any](T) *string {
	return nil
}

func NewFormRepository(db *DB, log *logger.Logger) FormRepository {
	return newDocumentRepository(db, models.InputForm{}.TableName(),
		func(f models.InputForm) string { return f.ID },
		func(f models.InputForm) *string { return identifierPtr(f.Identifier) },
		log)
}

func NewFieldRepository(db *DB, log *logger.Logger) FieldRepository {
	return newDocumentRepository(db, models.InputField{}.TableName(),
		func(f models.InputField) string { return f.ID },
		func(f models.InputField) *string { return identifierPtr(f.Identifier) },
		log)
}

func NewEnumRepository(db *DB, log *logger.Logger) EnumRepository {
	return newDocumentRepository(db, models.InputEnum{}.TableName(),
		func(e models.InputEnum) string { return e.ID },
		func(e models.InputEnum) *string { return identifierPtr(e.Identifier) },
		log)
}

func NewFoodEnumRepository(db *DB, log *logger.Logger) FoodEnumRepository {
	return newDocumentRepository(db, models.FoodEnum{}.TableName(),
		func(e models.FoodEnum) string { return e.ID },
		func(e models.FoodEnum) *string { return identifierPtr(e.Identifier) },
		log)
}

func NewFoodItemRepository(db *DB, log *logger.Logger) FoodItemRepository {
	return newDocumentRepository(db, models.FoodEnumItem{}.TableName(),
		func(i models.FoodEnumItem) string { return i.ID },
		func(i models.FoodEnumItem) *string { return identifierPtr(i.Identifier) },
		log)
}

func NewStudyRepository(db *DB, log *logger.Logger) StudyRepository {
	return newDocumentRepository(db, models.Study{}.TableName(),
		func(s models.Study) string { return s.ID },
		noIdentifier[models.Study],
		log)
}

func (r *documentRepository[T]) Upsert(ctx context.Context, entity T) (T, error) {
	log := logger.FromContext(ctx)

	doc, err := json.Marshal(entity)
	if err != nil {
		return entity, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := buildUpsertDocumentQuery(r.table, r.idOf(entity), r.identifierOf(entity), doc)
	if err != nil {
		return entity, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*documentRepository.Upsert").
			Str("table", r.table).
			Str("id", r.idOf(entity)).
			Msg("failed to upsert document")
		return entity, mapWriteError(err)
	}

	return entity, nil
}

func (r *documentRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var entity T
	query, args, err := buildGetDocumentQuery(r.table, id)
	if err != nil {
		return entity, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*documentRepository.Get", query, args...)
}

func (r *documentRepository[T]) scanOne(ctx context.Context, fn, query string, args ...any) (T, error) {
	log := logger.FromContext(ctx)

	var (
		entity T
		doc    []byte
	)
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity, ErrNotFound
		}
		log.Err(err).Str("func", fn).Str("table", r.table).Msg("failed to scan document row")
		return entity, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(doc, &entity); err != nil {
		log.Err(err).Str("func", fn).Str("table", r.table).Msg("stored document is not valid JSON")
		return entity, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return entity, nil
}

func (r *documentRepository[T]) List(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(r.table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Str("table", r.table).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0, 32)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			log.Err(err).Str("func", "*documentRepository.List").Str("table", r.table).Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var entity T
		if err = json.Unmarshal(doc, &entity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		result = append(result, entity)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Str("table", r.table).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *documentRepository[T]) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(r.table, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Delete").Str("table", r.table).Str("id", id).Msg("failed to delete document")
		return mapWriteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *documentRepository[T]) IdentifierExists(ctx context.Context, identifier, exceptID string) (bool, error) {
	query, args, err := buildIdentifierExistsQuery(r.table, identifier, exceptID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*documentRepository.IdentifierExists").
			Str("table", r.table).
			Msg("failed to count identifiers")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
