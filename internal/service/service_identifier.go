package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type identifierExistsFunc func(ctx context.Context, identifier, exceptID string) (bool, error)

// identifierService looks identifiers up in the repository of their
// namespace instead of loading the whole schema.
type identifierService struct {
	lookups map[models.IdentifierNamespace]identifierExistsFunc

	logger *logger.Logger
}

func NewIdentifierService(storages *store.Storages, logger *logger.Logger) IdentifierService {
	return &identifierService{
		lookups: map[models.IdentifierNamespace]identifierExistsFunc{
			models.NamespaceForm:     storages.FormRepository.IdentifierExists,
			models.NamespaceField:    storages.FieldRepository.IdentifierExists,
			models.NamespaceEnum:     storages.EnumRepository.IdentifierExists,
			models.NamespaceFoodEnum: storages.FoodEnumRepository.IdentifierExists,
			models.NamespaceFoodItem: storages.FoodItemRepository.IdentifierExists,
		},
		logger: logger,
	}
}

func (s *identifierService) CheckIdentifier(ctx context.Context, ns models.IdentifierNamespace, identifier, original string) (models.IdentifierCheckResult, error) {
	exists, ok := s.lookups[ns]
	if !ok {
		return "", fmt.Errorf("%w: unknown namespace %q", ErrInvalidDataProvided, ns)
	}

	var lookupErr error
	res := schema.CheckIdentifier(identifier, original, func(candidate string) bool {
		found, err := exists(ctx, candidate, "")
		if err != nil {
			lookupErr = err
		}
		return found
	})
	if lookupErr != nil {
		logger.FromContext(ctx).Err(lookupErr).
			Str("func", "*identifierService.CheckIdentifier").
			Str("namespace", string(ns)).
			Msg("identifier lookup failed")
		return "", fmt.Errorf("identifier lookup failed: %w", lookupErr)
	}

	return res, nil
}
