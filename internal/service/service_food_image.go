package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// foodImageService keeps image metadata and files in step. Files are stored
// under "<uuid>.<ext>" so that uploads never collide with each other.
type foodImageService struct {
	repository store.FoodImageRepository
	images     store.ImageStorage
	snapshots  SnapshotLoader
	ids        IDGenerator
	validator  validators.Validator
	sanitizer  *Sanitizer

	logger *logger.Logger
}

func NewFoodImageService(repository store.FoodImageRepository, images store.ImageStorage, snapshots SnapshotLoader, ids IDGenerator, validator validators.Validator, sanitizer *Sanitizer, logger *logger.Logger) FoodImageService {
	return &foodImageService{
		repository: repository,
		images:     images,
		snapshots:  snapshots,
		ids:        ids,
		validator:  validator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (s *foodImageService) Upload(ctx context.Context, meta models.FoodImage, originalName string, file io.Reader, size int64) (models.FoodImage, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, meta); err != nil {
		return models.FoodImage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	name := s.ids.Generate() + strings.ToLower(filepath.Ext(originalName))
	if err := store.ValidateImageName(name); err != nil {
		return models.FoodImage{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	file, err := store.SniffImage(file, originalName)
	if err != nil {
		return models.FoodImage{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	var oldFile *string
	if models.IsNewElementID(meta.ID) {
		meta.ID = s.ids.Generate()
	} else {
		stored, err := s.repository.Get(ctx, meta.ID)
		if err != nil {
			return models.FoodImage{}, mapImageError(err)
		}
		oldFile = stored.Filename
	}

	if err := s.images.Put(ctx, name, file, size); err != nil {
		log.Err(err).Str("func", "*foodImageService.Upload").Str("filename", name).Msg("error storing image file")
		return models.FoodImage{}, mapImageError(err)
	}

	meta = s.sanitizer.FoodImage(meta)
	meta.Filename = &name

	saved, err := s.repository.Upsert(ctx, meta)
	if err != nil {
		log.Err(err).Str("func", "*foodImageService.Upload").Str("id", meta.ID).Msg("error saving image metadata")
		if delErr := s.images.Delete(ctx, name); delErr != nil {
			log.Err(delErr).Str("func", "*foodImageService.Upload").Str("filename", name).Msg("orphaned image file")
		}
		return models.FoodImage{}, mapImageError(err)
	}

	if oldFile != nil && *oldFile != "" && *oldFile != name {
		if err = s.images.Delete(ctx, *oldFile); err != nil {
			log.Err(err).Str("func", "*foodImageService.Upload").Str("filename", *oldFile).Msg("error removing replaced image file")
		}
	}

	return saved, nil
}

// UpdateMetadata changes everything but the stored file.
func (s *foodImageService) UpdateMetadata(ctx context.Context, meta models.FoodImage) (models.FoodImage, error) {
	if err := s.validator.Validate(ctx, meta); err != nil {
		return models.FoodImage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if models.IsNewElementID(meta.ID) {
		return models.FoodImage{}, fmt.Errorf("%w: new images need a file", ErrInvalidDataProvided)
	}

	stored, err := s.repository.Get(ctx, meta.ID)
	if err != nil {
		return models.FoodImage{}, mapImageError(err)
	}

	meta = s.sanitizer.FoodImage(meta)
	meta.Filename = stored.Filename

	saved, err := s.repository.Upsert(ctx, meta)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodImageService.UpdateMetadata").Str("id", meta.ID).Msg("error saving image metadata")
		return models.FoodImage{}, mapImageError(err)
	}
	return saved, nil
}

func (s *foodImageService) Get(ctx context.Context, id string) (models.FoodImage, error) {
	if err := s.validator.Validate(ctx, validators.EntityID(id)); err != nil {
		return models.FoodImage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	image, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.FoodImage{}, mapImageError(err)
	}
	return image, nil
}

func (s *foodImageService) List(ctx context.Context) ([]models.FoodImage, error) {
	images, err := s.repository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodImageService.List").Msg("error listing images")
		return nil, err
	}
	return images, nil
}

func (s *foodImageService) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if err := store.ValidateImageName(filename); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	if _, err := s.repository.FindByFilename(ctx, filename); err != nil {
		return nil, "", mapImageError(err)
	}

	rc, err := s.images.Get(ctx, filename)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodImageService.Open").Str("filename", filename).Msg("error opening image file")
		return nil, "", mapImageError(err)
	}
	return rc, store.ImageContentType(filename), nil
}

func (s *foodImageService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, validators.EntityID(id)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	snap, err := loadSnapshot(ctx, s.snapshots)
	if err != nil {
		return err
	}
	if refs := snap.catalog.FoodItemsUsingImage(id); len(refs) > 0 {
		return &ReferencedError{ID: id, References: refs}
	}

	stored, err := s.repository.Get(ctx, id)
	if err != nil {
		return mapImageError(err)
	}
	if err = s.repository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*foodImageService.Delete").Str("id", id).Msg("error deleting image metadata")
		return mapImageError(err)
	}

	if stored.Filename != nil && *stored.Filename != "" {
		if err = s.images.Delete(ctx, *stored.Filename); err != nil {
			log.Err(err).Str("func", "*foodImageService.Delete").Str("filename", *stored.Filename).Msg("error removing image file")
		}
	}
	return nil
}

func mapImageError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrImageNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrInvalidImage):
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrIdentifierConflict, err)
	}
	return err
}
