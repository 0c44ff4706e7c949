package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type repositorySnapshotLoader struct {
	storages *store.Storages
}

// NewSnapshotLoader reads the schema from the repositories of storages.
func NewSnapshotLoader(storages *store.Storages) SnapshotLoader {
	return &repositorySnapshotLoader{storages: storages}
}

func (l *repositorySnapshotLoader) Load(ctx context.Context) (models.SchemaBundle, error) {
	log := logger.FromContext(ctx)

	var (
		b   models.SchemaBundle
		err error
	)
	steps := []struct {
		name string
		load func() error
	}{
		{"studies", func() (err error) { b.Studies, err = l.storages.StudyRepository.List(ctx); return }},
		{"forms", func() (err error) { b.Forms, err = l.storages.FormRepository.List(ctx); return }},
		{"fields", func() (err error) { b.Fields, err = l.storages.FieldRepository.List(ctx); return }},
		{"enums", func() (err error) { b.Enums, err = l.storages.EnumRepository.List(ctx); return }},
		{"food enums", func() (err error) { b.FoodEnums, err = l.storages.FoodEnumRepository.List(ctx); return }},
		{"food items", func() (err error) { b.FoodItems, err = l.storages.FoodItemRepository.List(ctx); return }},
		{"food images", func() (err error) { b.FoodImages, err = l.storages.FoodImageRepository.List(ctx); return }},
	}
	for _, step := range steps {
		if err = step.load(); err != nil {
			log.Err(err).Str("func", "*repositorySnapshotLoader.Load").Msgf("error listing %s", step.name)
			return models.SchemaBundle{}, fmt.Errorf("error listing %s: %w", step.name, err)
		}
	}

	return b, nil
}

// snapshot is the stored schema as seen by one request.
type snapshot struct {
	bundle   models.SchemaBundle
	catalog  *schema.Catalog
	registry *schema.Registry
}

func newSnapshot(b models.SchemaBundle) snapshot {
	c := schema.NewCatalogFromBundle(b)
	return snapshot{
		bundle:   b,
		catalog:  c,
		registry: schema.NewRegistryFromCatalog(c),
	}
}

// studiesReferencing returns the ids of studies using id as a form or as
// the initial food screen.
func (s snapshot) studiesReferencing(id string) []string {
	var res []string
	for _, st := range s.bundle.Studies {
		for _, ref := range []*string{st.StaticDataForm, st.UserDataForm, st.InitialFoodEnum} {
			if ref != nil && *ref == id {
				res = append(res, st.ID)
				break
			}
		}
	}
	return res
}

func loadSnapshot(ctx context.Context, loader SnapshotLoader) (snapshot, error) {
	b, err := loader.Load(ctx)
	if err != nil {
		return snapshot{}, err
	}
	return newSnapshot(b), nil
}
