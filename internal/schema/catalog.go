package schema

import (
	"slices"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// Catalog indexes every stored schema entity by id. It is the lookup table
// for reference checks and is never mutated by validation.
type Catalog struct {
	Forms      map[string]models.InputForm
	Fields     map[string]models.InputField
	Enums      map[string]models.InputEnum
	FoodEnums  map[string]models.FoodEnum
	FoodItems  map[string]models.FoodEnumItem
	FoodImages map[string]models.FoodImage
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Forms:      make(map[string]models.InputForm),
		Fields:     make(map[string]models.InputField),
		Enums:      make(map[string]models.InputEnum),
		FoodEnums:  make(map[string]models.FoodEnum),
		FoodItems:  make(map[string]models.FoodEnumItem),
		FoodImages: make(map[string]models.FoodImage),
	}
}

// NewCatalogFromBundle indexes the entities of b.
func NewCatalogFromBundle(b models.SchemaBundle) *Catalog {
	c := NewCatalog()
	for _, f := range b.Forms {
		c.Forms[f.ID] = f
	}
	for _, f := range b.Fields {
		c.Fields[f.ID] = f
	}
	for _, e := range b.Enums {
		c.Enums[e.ID] = e
	}
	for _, e := range b.FoodEnums {
		c.FoodEnums[e.ID] = e
	}
	for _, i := range b.FoodItems {
		c.FoodItems[i.ID] = i
	}
	for _, i := range b.FoodImages {
		c.FoodImages[i.ID] = i
	}
	return c
}

// WithForm returns a shallow copy of c in which form replaces the stored
// form with the same id. Used to validate a form before it is saved.
func (c *Catalog) WithForm(form models.InputForm) *Catalog {
	cp := *c
	cp.Forms = make(map[string]models.InputForm, len(c.Forms)+1)
	for k, v := range c.Forms {
		cp.Forms[k] = v
	}
	cp.Forms[form.ID] = form
	return &cp
}

// WithField is the [Catalog.WithForm] counterpart for fields.
func (c *Catalog) WithField(field models.InputField) *Catalog {
	cp := *c
	cp.Fields = make(map[string]models.InputField, len(c.Fields)+1)
	for k, v := range c.Fields {
		cp.Fields[k] = v
	}
	cp.Fields[field.ID] = field
	return &cp
}

// FieldsReferencing returns the ids of fields whose adt_enum_id is id.
func (c *Catalog) FieldsReferencing(id string) []string {
	var res []string
	for _, f := range c.Fields {
		if f.Datatype == models.ListType || f.Datatype.IsReference() {
			if f.ReferenceID() == id {
				res = append(res, f.ID)
			}
		}
	}
	return sortedCopy(res)
}

// FormsContainingField returns the ids of forms that list fieldID.
func (c *Catalog) FormsContainingField(fieldID string) []string {
	var res []string
	for _, f := range c.Forms {
		for _, id := range f.Fields {
			if id == fieldID {
				res = append(res, f.ID)
				break
			}
		}
	}
	return sortedCopy(res)
}

// FoodEnumsReferencing returns the ids of food screens that list itemID as
// an item or use it as a transition trigger, or that target foodEnumID.
func (c *Catalog) FoodEnumsReferencing(id string) []string {
	var res []string
	for _, fe := range c.FoodEnums {
		if fe.ID == id {
			continue
		}
		if referencesID(fe, id) {
			res = append(res, fe.ID)
		}
	}
	return sortedCopy(res)
}

// FoodItemsUsingImage returns the ids of food items showing imageID.
func (c *Catalog) FoodItemsUsingImage(imageID string) []string {
	var res []string
	for _, it := range c.FoodItems {
		if it.Image != nil && *it.Image == imageID {
			res = append(res, it.ID)
		}
	}
	return sortedCopy(res)
}

func referencesID(fe models.FoodEnum, id string) bool {
	for _, itemID := range fe.ItemIDs {
		if itemID == id {
			return true
		}
	}
	for _, t := range fe.Transitions {
		if t.SelectedItemID != nil && *t.SelectedItemID == id {
			return true
		}
		if t.TargetEnum != nil && *t.TargetEnum == id {
			return true
		}
	}
	return false
}

func sortedCopy(ids []string) []string {
	res := slices.Clone(ids)
	slices.Sort(res)
	return res
}
