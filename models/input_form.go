package models

// InputForm is an ordered list of field references shown together.
// A form does not own its fields.
type InputForm struct {
	ID          string        `json:"id" yaml:"id"`
	Identifier  string        `json:"identifier" yaml:"identifier"`
	Title       *LocalizedStr `json:"title,omitempty" yaml:"title,omitempty"`
	Description *LocalizedStr `json:"description,omitempty" yaml:"description,omitempty"`

	// Fields holds InputField ids. Ids of Container fields may repeat.
	Fields []string `json:"fields" yaml:"fields"`
}

// TableName returns the name of the database table
// associated with the InputForm model.
func (f InputForm) TableName() string {
	return "input_forms"
}

// InputEnumItem is one selectable value of an [InputEnum].
type InputEnumItem struct {
	Identifier string       `json:"identifier" yaml:"identifier"`
	Label      LocalizedStr `json:"label" yaml:"label"`
}

// InputEnum is a named list of selectable values used as the domain of an
// EnumType field.
type InputEnum struct {
	ID         string          `json:"id" yaml:"id"`
	Identifier string          `json:"identifier" yaml:"identifier"`
	Items      []InputEnumItem `json:"items" yaml:"items"`
}

// NewEnumItemCount is the number of empty items a new enum starts with.
const NewEnumItemCount = 3

// NewInputEnum returns a not yet stored enum with empty items.
func NewInputEnum() InputEnum {
	return InputEnum{
		ID:    NewElementID,
		Items: make([]InputEnumItem, NewEnumItemCount),
	}
}

// HasItem reports whether an item with the given identifier exists.
func (e InputEnum) HasItem(identifier string) bool {
	for _, it := range e.Items {
		if it.Identifier == identifier {
			return true
		}
	}
	return false
}

// TableName returns the name of the database table
// associated with the InputEnum model.
func (e InputEnum) TableName() string {
	return "input_enums"
}
