// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType is the data kind an [InputField] holds.
// The string values are the ones stored in the database and sent to the
// participant app, so they must not change.
type FieldType string

const (
	// StringType is free text input.
	StringType FieldType = "StringType"

	// BoolType is a checkbox.
	BoolType FieldType = "BoolType"

	// FloatType is a decimal number.
	FloatType FieldType = "FloatType"

	// IntType is an integer, optionally rendered as a rating slider.
	IntType FieldType = "IntType"

	// EnumType is a selection from an [InputEnum].
	EnumType FieldType = "EnumType"

	// TimeType is a point in time of day.
	TimeType FieldType = "TimeType"

	// DateType is a calendar date.
	DateType FieldType = "DateType"

	// ListType is a list of values of the field's ElementsType.
	ListType FieldType = "ListType"

	// FormType embeds another [InputForm] as a subform.
	FormType FieldType = "ADT"

	// Container starts a visual group. It carries no data.
	Container FieldType = "Container"
)

// FieldTypes lists every known field type in the order editors offer them.
var FieldTypes = []FieldType{
	StringType, IntType, FloatType, BoolType, TimeType, DateType, EnumType, ListType, FormType, Container,
}

var fieldTypeLabels = map[FieldType]string{
	StringType: "Text Input",
	IntType:    "Integer/Rating",
	FloatType:  "Decimal",
	BoolType:   "Checkbox",
	TimeType:   "Time",
	DateType:   "Date",
	EnumType:   "Selection",
	ListType:   "List",
	FormType:   "Subform",
	Container:  "Container Start",
}

// IsValid reports whether t is one of the known field types.
func (t FieldType) IsValid() bool {
	_, ok := fieldTypeLabels[t]
	return ok
}

// Label returns the human-readable name of t, or the raw value if t is unknown.
func (t FieldType) Label() string {
	if l, ok := fieldTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsNumeric reports whether t is IntType or FloatType.
func (t FieldType) IsNumeric() bool {
	return t == IntType || t == FloatType
}

// IsTemporal reports whether t is DateType or TimeType.
func (t FieldType) IsTemporal() bool {
	return t == DateType || t == TimeType
}

// IsReference reports whether a field of type t points to another entity
// through its adt_enum_id.
func (t FieldType) IsReference() bool {
	return t == EnumType || t == FormType
}

// CanBeListElement reports whether t may be used as the ElementsType of a list.
// Lists of lists and lists of checkboxes are not supported.
func (t FieldType) CanBeListElement() bool {
	return t.IsValid() && t != ListType && t != BoolType
}

// ListElementTypes returns the field types allowed as list elements.
func ListElementTypes() []FieldType {
	res := make([]FieldType, 0, len(FieldTypes))
	for _, t := range FieldTypes {
		if t.CanBeListElement() {
			res = append(res, t)
		}
	}
	return res
}
