package models

// PermissionType is the access level a role has on a field.
// A role without a [Permission] entry has no access.
type PermissionType string

const (
	PermissionRead PermissionType = "Read"
	PermissionEdit PermissionType = "Edit"
)

// Permission grants a role read or edit access to a field.
type Permission struct {
	Role Role           `json:"role" yaml:"role"`
	Type PermissionType `json:"type" yaml:"type"`
}

// ConfigurableRoles are the roles whose field permissions can be edited.
// Administrators and supervisors always have full access.
var ConfigurableRoles = []Role{RoleNurse, RoleParticipant}

// DefaultSliderStepSize is used when a slider field has no step size.
const DefaultSliderStepSize = 1.0

// InputField is a single typed question definition. Fields are shared by
// reference between forms.
//
// The struct is the storage and wire shape. Which properties are meaningful
// depends on Datatype; see schema.KindOf for the per-kind view.
type InputField struct {
	ID         string        `json:"id" yaml:"id"`
	Identifier string        `json:"identifier" yaml:"identifier"`
	Label      *LocalizedStr `json:"label,omitempty" yaml:"label,omitempty"`
	HelpText   *LocalizedStr `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Datatype   FieldType     `json:"datatype" yaml:"datatype"`

	// ElementsType is the element kind when Datatype is ListType.
	ElementsType *FieldType `json:"elements_type,omitempty" yaml:"elements_type,omitempty"`

	// AdtEnumID references an InputEnum (EnumType) or an InputForm (FormType),
	// also when those are the elements of a list.
	AdtEnumID *string `json:"adt_enum_id,omitempty" yaml:"adt_enum_id,omitempty"`

	// DefaultValue is nil when the field has no default.
	DefaultValue any `json:"defaultValue" yaml:"defaultValue,omitempty"`

	MinValue       *float64 `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue       *float64 `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	UseSlider      *bool    `json:"useSlider,omitempty" yaml:"useSlider,omitempty"`
	SliderMinLabel *string  `json:"sliderMinLabel,omitempty" yaml:"sliderMinLabel,omitempty"`
	SliderMaxLabel *string  `json:"sliderMaxLabel,omitempty" yaml:"sliderMaxLabel,omitempty"`
	SliderStepSize *float64 `json:"sliderStepSize,omitempty" yaml:"sliderStepSize,omitempty"`
	UnitString     *string  `json:"unitString,omitempty" yaml:"unitString,omitempty"`
	QRCodeInput    *bool    `json:"qrCodeInput,omitempty" yaml:"qrCodeInput,omitempty"`

	// DisplayPeriodDays shows the field only every n-th study day.
	DisplayPeriodDays *int `json:"displayPeriodDays,omitempty" yaml:"displayPeriodDays,omitempty"`

	// DisplayDayOne counts DisplayPeriodDays from the day after the study
	// begin instead of the begin itself.
	DisplayDayOne *bool `json:"displayDayOne,omitempty" yaml:"displayDayOne,omitempty"`

	// MaybeNull marks the field as optional.
	MaybeNull   *bool        `json:"maybeNull,omitempty" yaml:"maybeNull,omitempty"`
	Permissions []Permission `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// NewInputField returns a not yet stored text field with the editor defaults.
func NewInputField() InputField {
	elements := StringType
	dayOne := true
	return InputField{
		ID:            NewElementID,
		Datatype:      StringType,
		ElementsType:  &elements,
		DisplayDayOne: &dayOne,
	}
}

// IsOptional reports whether MaybeNull is set.
func (f InputField) IsOptional() bool {
	return f.MaybeNull != nil && *f.MaybeNull
}

// EffectiveType returns ElementsType for lists and Datatype otherwise.
func (f InputField) EffectiveType() FieldType {
	if f.Datatype == ListType && f.ElementsType != nil {
		return *f.ElementsType
	}
	return f.Datatype
}

// ReferenceID returns AdtEnumID or "" when it is not set.
func (f InputField) ReferenceID() string {
	if f.AdtEnumID == nil {
		return ""
	}
	return *f.AdtEnumID
}

// PermissionFor returns the permission granted to role, if any.
func (f InputField) PermissionFor(role Role) (PermissionType, bool) {
	for _, p := range f.Permissions {
		if p.Role == role {
			return p.Type, true
		}
	}
	return "", false
}

// TableName returns the name of the database table
// associated with the InputField model.
func (f InputField) TableName() string {
	return "input_fields"
}
