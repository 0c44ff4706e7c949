package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type schemaToolsService struct {
	enumRepository     store.EnumRepository
	foodEnumRepository store.FoodEnumRepository
	studyRepository    store.StudyRepository
	snapshots          SnapshotLoader
	validator          validators.Validator
	now                func() time.Time

	logger *logger.Logger
}

func NewSchemaToolsService(storages *store.Storages, snapshots SnapshotLoader, validator validators.Validator, logger *logger.Logger) SchemaToolsService {
	return &schemaToolsService{
		enumRepository:     storages.EnumRepository,
		foodEnumRepository: storages.FoodEnumRepository,
		studyRepository:    storages.StudyRepository,
		snapshots:          snapshots,
		validator:          validator,
		now:                time.Now,
		logger:             logger,
	}
}

// PreviewDefault coerces req.Value the way a field with this shape would
// store it. Lists and subforms never carry a default and report their
// placeholder instead.
func (s *schemaToolsService) PreviewDefault(ctx context.Context, req models.DefaultValueRequest) (models.DefaultValueResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.DefaultValueResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var enum *models.InputEnum
	if req.Datatype == models.EnumType && req.AdtEnumID != nil && *req.AdtEnumID != "" {
		e, err := s.enumRepository.Get(ctx, *req.AdtEnumID)
		switch {
		case err == nil:
			enum = &e
		case !errors.Is(err, store.ErrNotFound):
			logger.FromContext(ctx).Err(err).Str("func", "*schemaToolsService.PreviewDefault").Msg("error loading enum")
			return models.DefaultValueResponse{}, err
		}
	}

	def := schema.Coerce(req.Datatype, req.Value, enum)
	resp := models.DefaultValueResponse{
		Value:       def.Value,
		HasDefault:  def.Set,
		Placeholder: schema.Placeholder(req.Datatype),
	}
	if raw, ok := def.Value.(string); ok && def.Set {
		if m, ok := schema.ParseMomentary(req.Datatype, raw); ok {
			at := m.Resolve(s.now())
			resp.ResolvesTo = &at
		}
	}
	return resp, nil
}

func (s *schemaToolsService) EvaluateTransition(ctx context.Context, req models.TransitionRequest) (models.TransitionResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.TransitionResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	fe, err := s.foodEnumRepository.Get(ctx, req.FoodEnumID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TransitionResponse{}, fmt.Errorf("%w: food enum %s", ErrNotFound, req.FoodEnumID)
		}
		return models.TransitionResponse{}, err
	}

	outcome, fired := schema.Evaluate(fe, req.SelectedItemID, req.Tags)
	if !fired {
		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}
		return models.TransitionResponse{TransitionIndex: -1, Tags: tags}, nil
	}

	resp := models.TransitionResponse{
		Fired:           true,
		TransitionIndex: outcome.Index,
		Finished:        outcome.Finished(),
		Tags:            outcome.Tags,
	}
	if !outcome.Finished() {
		resp.TargetEnum = &outcome.Target
	}
	return resp, nil
}

func (s *schemaToolsService) FoodGraph(ctx context.Context, initial string) (schema.FoodGraphReport, error) {
	snap, err := loadSnapshot(ctx, s.snapshots)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*schemaToolsService.FoodGraph").Msg("error loading schema snapshot")
		return schema.FoodGraphReport{}, err
	}

	if initial == "" {
		for _, st := range snap.bundle.Studies {
			if st.InitialFoodEnum != nil && *st.InitialFoodEnum != "" {
				initial = *st.InitialFoodEnum
				break
			}
		}
	}

	return schema.AnalyzeFoodGraph(snap.catalog, initial), nil
}
