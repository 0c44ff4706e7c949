package service

import (
	"slices"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

var formRules = documentRules[models.InputForm]{
	kind:       "form",
	id:         func(f models.InputForm) string { return f.ID },
	withID:     func(f models.InputForm, id string) models.InputForm { f.ID = id; return f },
	identifier: func(f models.InputForm) string { return f.Identifier },
	validate: func(s snapshot, f models.InputForm, original string) schema.Result {
		next := s.catalog.WithForm(f)
		return mergeResults(
			schema.ValidateForm(f, original, s.registry.Namespace(models.NamespaceForm), next),
			schema.ValidateSubforms(next, f.ID),
		)
	},
	references: func(s snapshot, id string) []string {
		return concatRefs(s.catalog.FieldsReferencing(id), s.studiesReferencing(id))
	},
}

var fieldRules = documentRules[models.InputField]{
	kind:       "field",
	id:         func(f models.InputField) string { return f.ID },
	withID:     func(f models.InputField, id string) models.InputField { f.ID = id; return f },
	identifier: func(f models.InputField) string { return f.Identifier },
	normalize:  normalizeField,
	validate: func(s snapshot, f models.InputField, original string) schema.Result {
		return mergeResults(
			schema.ValidateField(f, original, s.registry.Namespace(models.NamespaceField), s.catalog),
			schema.ValidateFieldSubforms(s.catalog, f),
		)
	},
	references: func(s snapshot, id string) []string {
		return s.catalog.FormsContainingField(id)
	},
}

var enumRules = documentRules[models.InputEnum]{
	kind:       "enum",
	id:         func(e models.InputEnum) string { return e.ID },
	withID:     func(e models.InputEnum, id string) models.InputEnum { e.ID = id; return e },
	identifier: func(e models.InputEnum) string { return e.Identifier },
	validate: func(s snapshot, e models.InputEnum, original string) schema.Result {
		return schema.ValidateEnum(e, original, s.registry.Namespace(models.NamespaceEnum))
	},
	references: func(s snapshot, id string) []string {
		return s.catalog.FieldsReferencing(id)
	},
}

var foodEnumRules = documentRules[models.FoodEnum]{
	kind:       "food enum",
	id:         func(e models.FoodEnum) string { return e.ID },
	withID:     func(e models.FoodEnum, id string) models.FoodEnum { e.ID = id; return e },
	identifier: func(e models.FoodEnum) string { return e.Identifier },
	validate: func(s snapshot, e models.FoodEnum, original string) schema.Result {
		return schema.ValidateFoodEnum(e, original, s.registry.Namespace(models.NamespaceFoodEnum), s.catalog)
	},
	references: func(s snapshot, id string) []string {
		return concatRefs(s.catalog.FoodEnumsReferencing(id), s.studiesReferencing(id))
	},
}

var foodItemRules = documentRules[models.FoodEnumItem]{
	kind:       "food item",
	id:         func(i models.FoodEnumItem) string { return i.ID },
	withID:     func(i models.FoodEnumItem, id string) models.FoodEnumItem { i.ID = id; return i },
	identifier: func(i models.FoodEnumItem) string { return i.Identifier },
	validate: func(s snapshot, i models.FoodEnumItem, original string) schema.Result {
		return schema.ValidateFoodEnumItem(i, original, s.registry.Namespace(models.NamespaceFoodItem), s.catalog)
	},
	references: func(s snapshot, id string) []string {
		return s.catalog.FoodEnumsReferencing(id)
	},
}

var studyRules = documentRules[models.Study]{
	kind:       "study",
	id:         func(st models.Study) string { return st.ID },
	withID:     func(st models.Study, id string) models.Study { st.ID = id; return st },
	identifier: func(models.Study) string { return "" },
	validate: func(s snapshot, st models.Study, _ string) schema.Result {
		return schema.ValidateStudy(st, s.catalog)
	},
}

// normalizeField drops the properties a field's datatype does not use before
// it is validated and stored.
func normalizeField(s snapshot, f models.InputField) models.InputField {
	return schema.Normalize(f, s.catalog)
}

func concatRefs(lists ...[]string) []string {
	var res []string
	for _, l := range lists {
		res = append(res, l...)
	}
	slices.Sort(res)
	return slices.Compact(res)
}
