package models

// FoodEnumItem is a selectable entry of a food screen. It is either a food
// item that is recorded as consumed or an intermediate node such as a
// category or a quantity.
type FoodEnumItem struct {
	ID            string        `json:"id" yaml:"id"`
	Identifier    string        `json:"identifier" yaml:"identifier"`
	Label         LocalizedStr  `json:"label" yaml:"label"`
	ExplicitLabel *LocalizedStr `json:"explicit_label,omitempty" yaml:"explicit_label,omitempty"`

	// Image references a FoodImage.
	Image *string `json:"image,omitempty" yaml:"image,omitempty"`

	IsFoodItem bool `json:"is_food_item" yaml:"is_food_item"`
}

// TableName returns the name of the database table
// associated with the FoodEnumItem model.
func (i FoodEnumItem) TableName() string {
	return "food_enum_items"
}

// FoodEnumTransition is an edge leaving a food screen.
type FoodEnumTransition struct {
	// RequireTags must all be present in the accumulated tag set.
	RequireTags []string `json:"require_tags" yaml:"require_tags"`

	// AddTags are merged into the tag set when the transition fires.
	AddTags []string `json:"add_tags" yaml:"add_tags"`

	// SelectedItemID limits the transition to one item. Nil matches any item.
	SelectedItemID *string `json:"selected_item_id,omitempty" yaml:"selected_item_id,omitempty"`

	// TargetEnum is the next food screen. Nil finishes the flow.
	TargetEnum *string `json:"target_enum,omitempty" yaml:"target_enum,omitempty"`
}

// IsFinish reports whether the transition ends the flow.
func (t FoodEnumTransition) IsFinish() bool {
	return t.TargetEnum == nil || *t.TargetEnum == ""
}

// IsWildcard reports whether the transition matches any selected item.
func (t FoodEnumTransition) IsWildcard() bool {
	return t.SelectedItemID == nil || *t.SelectedItemID == ""
}

// FoodEnum is a food screen: a node of the food recording flow with
// selectable items and outgoing transitions.
type FoodEnum struct {
	ID          string               `json:"id" yaml:"id"`
	Identifier  string               `json:"identifier" yaml:"identifier"`
	Label       LocalizedStr         `json:"label" yaml:"label"`
	HelpText    *LocalizedStr        `json:"help_text,omitempty" yaml:"help_text,omitempty"`
	ItemIDs     []string             `json:"item_ids" yaml:"item_ids"`
	Transitions []FoodEnumTransition `json:"transitions" yaml:"transitions"`
}

// SelectableTags returns every tag mentioned by any transition, each once,
// in order of first appearance.
func (e FoodEnum) SelectableTags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range e.Transitions {
		for _, list := range [][]string{t.AddTags, t.RequireTags} {
			for _, tag := range list {
				if _, ok := seen[tag]; ok {
					continue
				}
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// TableName returns the name of the database table
// associated with the FoodEnum model.
func (e FoodEnum) TableName() string {
	return "food_enums"
}

// FoodImage describes an image shown for a food item. Filename is the name
// under which the image file is stored on the server.
type FoodImage struct {
	ID          string        `json:"id" yaml:"id"`
	Filename    *string       `json:"filename,omitempty" yaml:"filename,omitempty"`
	Label       *LocalizedStr `json:"label,omitempty" yaml:"label,omitempty"`
	LicenseURL  *string       `json:"licenseUrl,omitempty" yaml:"licenseUrl,omitempty"`
	LicenseName *string       `json:"licenseName,omitempty" yaml:"licenseName,omitempty"`
	SourceInfo  *string       `json:"sourceInfo,omitempty" yaml:"sourceInfo,omitempty"`
	SourceURL   *string       `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
}

// TableName returns the name of the database table
// associated with the FoodImage model.
func (i FoodImage) TableName() string {
	return "food_images"
}
