// Package schema holds the study schema model rules: field kinds, default
// value coercion, identifier checks and the validation of forms, fields,
// enums, food screens and studies.
//
// Everything in this package is pure. Validation never fails with an error;
// it returns a [Result] with blocking errors and non-blocking warnings, and
// coercion falls back to "no default" instead of failing.
package schema
