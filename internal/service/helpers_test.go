package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	formID   = "0192f5c4-0000-7000-8000-000000000001"
	fieldID  = "0192f5c4-0000-7000-8000-000000000002"
	enumID   = "0192f5c4-0000-7000-8000-000000000003"
	screenID = "0192f5c4-0000-7000-8000-000000000004"
	itemID   = "0192f5c4-0000-7000-8000-000000000005"
	imageID  = "0192f5c4-0000-7000-8000-000000000006"
	studyID  = "0192f5c4-0000-7000-8000-000000000007"
	otherID  = "0192f5c4-0000-7000-8000-000000000008"
)

var errDB = errors.New("connection reset")

// sequenceIDs hands out the configured ids in order.
type sequenceIDs struct {
	ids []string
	n   int
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[s.n%len(s.ids)]
	s.n++
	return id
}

func bundleLoader(b models.SchemaBundle) SnapshotLoader {
	return SnapshotLoaderFunc(func(context.Context) (models.SchemaBundle, error) {
		return b, nil
	})
}

func failingLoader(err error) SnapshotLoader {
	return SnapshotLoaderFunc(func(context.Context) (models.SchemaBundle, error) {
		return models.SchemaBundle{}, err
	})
}

func lstr(s string) *models.LocalizedStr {
	l := models.NewLocalizedStr(s)
	return &l
}

func strPtr(s string) *string { return &s }

func textField(id, identifier string) models.InputField {
	return models.InputField{ID: id, Identifier: identifier, Label: lstr(identifier), Datatype: models.StringType}
}

func twoItemEnum(id, identifier string) models.InputEnum {
	return models.InputEnum{
		ID:         id,
		Identifier: identifier,
		Items: []models.InputEnumItem{
			{Identifier: "yes", Label: models.NewLocalizedStr("Yes")},
			{Identifier: "no", Label: models.NewLocalizedStr("No")},
		},
	}
}
