package schema

import "fmt"

// Code identifies the kind of an [Issue].
type Code string

const (
	CodeIdentifierInvalid      Code = "identifier_invalid"
	CodeIdentifierReserved     Code = "identifier_reserved"
	CodeIdentifierInUse        Code = "identifier_in_use"
	CodeLabelRequired          Code = "label_required"
	CodeUnknownType            Code = "unknown_type"
	CodeElementsTypeInvalid    Code = "elements_type_invalid"
	CodeReferenceRequired      Code = "reference_required"
	CodeMissingReference       Code = "missing_reference"
	CodeDuplicateField         Code = "duplicate_field"
	CodeSubformCycle           Code = "subform_cycle"
	CodeTooFewItems            Code = "too_few_items"
	CodeItemIdentifierRequired Code = "item_identifier_required"
	CodeItemLabelRequired      Code = "item_label_required"
	CodeDuplicateItem          Code = "duplicate_item"
	CodeRequiredCheckbox       Code = "required_checkbox"
	CodeBoundsInverted         Code = "bounds_inverted"
	CodeDefaultDiscarded       Code = "default_discarded"
	CodeUnreachableTransition  Code = "unreachable_transition"
	CodeInvalidValue           Code = "invalid_value"
)

// Issue is a single finding of a validation run. Path points at the
// offending property, e.g. "fields[2]" or "transitions[0].target_enum".
type Issue struct {
	Path    string `json:"path"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("%s: %s", i.Code, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Path, i.Code, i.Message)
}

// Result is the outcome of validating one entity. Errors block saving,
// Warnings are shown but do not.
type Result struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// OK reports whether the entity may be saved.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// HasCode reports whether any error or warning carries code.
func (r Result) HasCode(code Code) bool {
	for _, list := range [][]Issue{r.Errors, r.Warnings} {
		for _, i := range list {
			if i.Code == code {
				return true
			}
		}
	}
	return false
}

func (r *Result) addError(path string, code Code, msg string) {
	r.Errors = append(r.Errors, Issue{Path: path, Code: code, Message: msg})
}

func (r *Result) addWarning(path string, code Code, msg string) {
	r.Warnings = append(r.Warnings, Issue{Path: path, Code: code, Message: msg})
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
