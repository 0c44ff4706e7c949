// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

// Storages groups the server repositories and the image storage.
type Storages struct {
	DB *DB

	UserRepository      UserRepository
	FormRepository      FormRepository
	FieldRepository     FieldRepository
	EnumRepository      EnumRepository
	FoodEnumRepository  FoodEnumRepository
	FoodItemRepository  FoodItemRepository
	FoodImageRepository FoodImageRepository
	StudyRepository     StudyRepository

	ImageStorage ImageStorage
}

// NewStorages connects to Postgres, applies the migrations and opens the
// configured image storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("image storage error: %w", err)
	}

	return NewStoragesFromDB(db, images, log), nil
}

// NewStoragesFromDB wires the repositories onto an open connection.
func NewStoragesFromDB(db *DB, images ImageStorage, log *logger.Logger) *Storages {
	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		FormRepository:      NewFormRepository(db, log),
		FieldRepository:     NewFieldRepository(db, log),
		EnumRepository:      NewEnumRepository(db, log),
		FoodEnumRepository:  NewFoodEnumRepository(db, log),
		FoodItemRepository:  NewFoodItemRepository(db, log),
		FoodImageRepository: NewFoodImageRepository(db, log),
		StudyRepository:     NewStudyRepository(db, log),
		ImageStorage:        images,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
