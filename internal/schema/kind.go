package schema

import "github.com/MKhiriev/f4f-study-portal/models"

// Kind is the per-datatype view of an [models.InputField]. Each variant only
// carries the properties that are meaningful for its datatype.
type Kind interface {
	Datatype() models.FieldType
	isKind()
}

// SliderOptions are the slider settings of a numeric field.
type SliderOptions struct {
	MinLabel string
	MaxLabel string
	StepSize float64
}

// TextKind is a StringType field.
type TextKind struct {
	Default     *string
	Unit        string
	QRCodeInput bool
}

// NumberKind is an IntType or FloatType field.
type NumberKind struct {
	Type    models.FieldType
	Default *float64
	Min     *float64
	Max     *float64
	Unit    string

	// Slider is nil when the value is typed in.
	Slider      *SliderOptions
	QRCodeInput bool
}

// CheckboxKind is a BoolType field.
type CheckboxKind struct {
	Optional bool
}

// SelectionKind is an EnumType field.
type SelectionKind struct {
	EnumID  string
	Default *string
}

// TemporalKind is a DateType or TimeType field. Default is either an
// explicit ISO value or a momentary one.
type TemporalKind struct {
	Type      models.FieldType
	Explicit  *string
	Momentary *Momentary
}

// ListKind is a ListType field; Elements describes one element.
type ListKind struct {
	Elements Kind
}

// SubformKind is a FormType field embedding another form.
type SubformKind struct {
	FormID string
}

// ContainerKind starts a visual group and holds no data.
type ContainerKind struct{}

// UnknownKind is returned for datatypes this package does not know.
type UnknownKind struct {
	Type models.FieldType
}

func (TextKind) Datatype() models.FieldType       { return models.StringType }
func (k NumberKind) Datatype() models.FieldType   { return k.Type }
func (CheckboxKind) Datatype() models.FieldType   { return models.BoolType }
func (SelectionKind) Datatype() models.FieldType  { return models.EnumType }
func (k TemporalKind) Datatype() models.FieldType { return k.Type }
func (ListKind) Datatype() models.FieldType       { return models.ListType }
func (SubformKind) Datatype() models.FieldType    { return models.FormType }
func (ContainerKind) Datatype() models.FieldType  { return models.Container }
func (k UnknownKind) Datatype() models.FieldType  { return k.Type }

func (TextKind) isKind()      {}
func (NumberKind) isKind()    {}
func (CheckboxKind) isKind()  {}
func (SelectionKind) isKind() {}
func (TemporalKind) isKind()  {}
func (ListKind) isKind()      {}
func (SubformKind) isKind()   {}
func (ContainerKind) isKind() {}
func (UnknownKind) isKind()   {}

// KindOf returns the per-datatype view of f. Properties that do not apply to
// the datatype are dropped.
func KindOf(f models.InputField) Kind {
	if f.Datatype == models.ListType {
		elements := models.StringType
		if f.ElementsType != nil {
			elements = *f.ElementsType
		}
		return ListKind{Elements: kindFor(elements, f, false)}
	}
	return kindFor(f.Datatype, f, true)
}

func kindFor(t models.FieldType, f models.InputField, withDefault bool) Kind {
	switch t {
	case models.StringType:
		k := TextKind{Unit: deref(f.UnitString), QRCodeInput: derefBool(f.QRCodeInput)}
		if withDefault {
			if d := Coerce(t, f.DefaultValue, nil); d.Set {
				s := d.Value.(string)
				k.Default = &s
			}
		}
		return k
	case models.IntType, models.FloatType:
		k := NumberKind{Type: t, Min: f.MinValue, Max: f.MaxValue, Unit: deref(f.UnitString)}
		if derefBool(f.UseSlider) {
			step := models.DefaultSliderStepSize
			if f.SliderStepSize != nil && *f.SliderStepSize != 0 {
				step = *f.SliderStepSize
			}
			k.Slider = &SliderOptions{
				MinLabel: deref(f.SliderMinLabel),
				MaxLabel: deref(f.SliderMaxLabel),
				StepSize: step,
			}
		} else {
			k.QRCodeInput = derefBool(f.QRCodeInput)
		}
		if withDefault {
			if fl, ok := toFloat(f.DefaultValue); ok {
				if t == models.IntType {
					n, fits := toInt64(fl)
					fl, ok = float64(n), fits
				}
				if ok {
					k.Default = &fl
				}
			}
		}
		return k
	case models.BoolType:
		return CheckboxKind{Optional: f.IsOptional()}
	case models.EnumType:
		k := SelectionKind{EnumID: f.ReferenceID()}
		if s, ok := f.DefaultValue.(string); withDefault && ok && s != "" {
			k.Default = &s
		}
		return k
	case models.DateType, models.TimeType:
		k := TemporalKind{Type: t}
		if s, ok := f.DefaultValue.(string); withDefault && ok {
			if m, ok := ParseMomentary(t, s); ok {
				k.Momentary = &m
			} else if _, ok := parseISO(s); ok {
				k.Explicit = &s
			}
		}
		return k
	case models.FormType:
		return SubformKind{FormID: f.ReferenceID()}
	case models.Container:
		return ContainerKind{}
	}
	return UnknownKind{Type: t}
}

// Normalize returns f with every property cleared that its datatype does not
// use, and with the default coerced to the datatype.
func Normalize(f models.InputField, c *Catalog) models.InputField {
	effective := f.EffectiveType()

	if f.Datatype != models.ListType {
		f.ElementsType = nil
	}
	if !effective.IsReference() {
		f.AdtEnumID = nil
	}
	if !effective.IsNumeric() {
		f.MinValue, f.MaxValue = nil, nil
		f.UseSlider = nil
	}
	if !derefBool(f.UseSlider) {
		f.SliderMinLabel, f.SliderMaxLabel, f.SliderStepSize = nil, nil, nil
	} else if f.SliderStepSize == nil || *f.SliderStepSize == 0 {
		step := models.DefaultSliderStepSize
		f.SliderStepSize = &step
	}
	if !QRCodeApplicable(f) {
		f.QRCodeInput = nil
	}
	if effective == models.Container || effective == models.BoolType {
		f.UnitString = nil
	}

	f.DefaultValue = CoerceField(f, c).Value
	return f
}

// IsNumeric reports whether values of f are numbers, including lists of numbers.
func IsNumeric(f models.InputField) bool { return f.EffectiveType().IsNumeric() }

// IsString reports whether values of f are strings, including lists of strings.
func IsString(f models.InputField) bool { return f.EffectiveType() == models.StringType }

// IsEnum reports whether f selects from an enum, including lists of selections.
func IsEnum(f models.InputField) bool { return f.EffectiveType() == models.EnumType }

// IsSubform reports whether f embeds a form, including lists of subforms.
func IsSubform(f models.InputField) bool { return f.EffectiveType() == models.FormType }

// QRCodeApplicable reports whether f may offer input by scanned code: text
// fields and numeric fields that are not sliders.
func QRCodeApplicable(f models.InputField) bool {
	if IsString(f) {
		return true
	}
	return IsNumeric(f) && !derefBool(f.UseSlider)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
