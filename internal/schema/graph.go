package schema

import (
	"slices"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// subformEdges returns the forms embedded by form through FormType fields,
// including lists of subforms. Unknown fields and forms are skipped.
func subformEdges(form models.InputForm, c *Catalog) []string {
	var res []string
	for _, fieldID := range form.Fields {
		f, ok := c.Fields[fieldID]
		if !ok || !IsSubform(f) {
			continue
		}
		if target := f.ReferenceID(); hasKey(c.Forms, target) && !slices.Contains(res, target) {
			res = append(res, target)
		}
	}
	return res
}

// SubformCycle returns a chain of form ids starting and ending at formID if
// formID embeds itself, directly or through other subforms. It returns nil
// when there is no such cycle.
func SubformCycle(c *Catalog, formID string) []string {
	form, ok := c.Forms[formID]
	if !ok {
		return nil
	}

	visited := make(map[string]bool)
	var path []string
	var walk func(id string) []string
	walk = func(id string) []string {
		for _, next := range subformEdges(c.Forms[id], c) {
			if next == formID {
				return append(slices.Clone(path), next)
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, next)
			if cycle := walk(next); cycle != nil {
				return cycle
			}
			path = path[:len(path)-1]
		}
		return nil
	}

	path = []string{form.ID}
	return walk(formID)
}

// SubformCycles returns one cycle per form that embeds itself, ordered by
// form id.
func SubformCycles(c *Catalog) [][]string {
	ids := make([]string, 0, len(c.Forms))
	for id := range c.Forms {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var res [][]string
	for _, id := range ids {
		if cycle := SubformCycle(c, id); cycle != nil {
			res = append(res, cycle)
		}
	}
	return res
}

// ValidateSubforms reports a blocking error when formID is part of a subform
// cycle. Callers pass a catalog that already contains the edited entity.
func ValidateSubforms(c *Catalog, formID string) Result {
	res := newResult()
	if cycle := SubformCycle(c, formID); cycle != nil {
		res.addError("fields", CodeSubformCycle, msgSubformCycle)
	}
	return res
}

// ValidateFieldSubforms reports a blocking error when saving field would
// make any form that uses it embed itself.
func ValidateFieldSubforms(c *Catalog, field models.InputField) Result {
	res := newResult()
	if !IsSubform(field) {
		return res
	}
	next := c.WithField(field)
	for _, formID := range next.FormsContainingField(field.ID) {
		if SubformCycle(next, formID) != nil {
			res.addError("adt_enum_id", CodeSubformCycle, msgSubformCycle)
			break
		}
	}
	return res
}

// ValidateAll validates every entity of c against c itself and returns the
// results keyed by entity id. Subform cycles are reported on the forms.
func ValidateAll(c *Catalog) map[string]Result {
	reg := NewRegistryFromCatalog(c)
	res := make(map[string]Result)

	for id, f := range c.Fields {
		res[id] = ValidateField(f, f.Identifier, reg.Namespace(models.NamespaceField), c)
	}
	for id, f := range c.Forms {
		r := ValidateForm(f, f.Identifier, reg.Namespace(models.NamespaceForm), c)
		r.merge(ValidateSubforms(c, id))
		res[id] = r
	}
	for id, e := range c.Enums {
		res[id] = ValidateEnum(e, e.Identifier, reg.Namespace(models.NamespaceEnum))
	}
	for id, fe := range c.FoodEnums {
		res[id] = ValidateFoodEnum(fe, fe.Identifier, reg.Namespace(models.NamespaceFoodEnum), c)
	}
	for id, it := range c.FoodItems {
		res[id] = ValidateFoodEnumItem(it, it.Identifier, reg.Namespace(models.NamespaceFoodItem), c)
	}
	return res
}
