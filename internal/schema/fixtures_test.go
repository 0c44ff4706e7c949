package schema

import "github.com/MKhiriev/f4f-study-portal/models"

func ptr[T any](v T) *T { return &v }

func label(s string) *models.LocalizedStr {
	l := models.NewLocalizedStr(s)
	return &l
}

func field(id string, t models.FieldType) models.InputField {
	return models.InputField{ID: id, Identifier: id, Label: label(id), Datatype: t}
}

func enumOf(id string, items ...string) models.InputEnum {
	e := models.InputEnum{ID: id, Identifier: id}
	for _, it := range items {
		e.Items = append(e.Items, models.InputEnumItem{Identifier: it, Label: models.NewLocalizedStr(it)})
	}
	return e
}

func catalogOf(fields []models.InputField, forms []models.InputForm, enums []models.InputEnum) *Catalog {
	return NewCatalogFromBundle(models.SchemaBundle{Fields: fields, Forms: forms, Enums: enums})
}
