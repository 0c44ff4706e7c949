package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type foodImageRepository struct {
	*documentRepository[models.FoodImage]
}

func NewFoodImageRepository(db *DB, log *logger.Logger) FoodImageRepository {
	return &foodImageRepository{
		documentRepository: newDocumentRepository(db, models.FoodImage{}.TableName(),
			func(i models.FoodImage) string { return i.ID },
			noIdentifier[models.FoodImage],
			log),
	}
}

func (r *foodImageRepository) FindByFilename(ctx context.Context, filename string) (models.FoodImage, error) {
	query, args, err := buildFindImageByFilenameQuery(filename)
	if err != nil {
		return models.FoodImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*foodImageRepository.FindByFilename", query, args...)
}
