package schema

import (
	"strings"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// reservedIdentifiers are used by the participant app and the data export
// and cannot be taken by any form, field, enum or food screen.
var reservedIdentifiers = map[string]struct{}{
	// forms
	"user_data":      {},
	"user":           {},
	"anamnesis_data": {},

	// fields
	"study_begin_date":      {},
	"study_end_date":        {},
	"effective_day":         {},
	"foodlist":              {},
	"creation_time":         {},
	"modification_time":     {},
	"last_sync_id":          {},
	"id":                    {},
	"username":              {},
	"email":                 {},
	"new_password":          {},
	"hsz_identifier":        {},
	"containerBlank":        {},
	"role":                  {},
	"no_user_data_fields":   {},
	"no_static_data_fields": {},

	// enums
	"SensorDataType": {},
	"FoodType":       {},
}

// IsReserved reports whether identifier is reserved for internal usage.
func IsReserved(identifier string) bool {
	_, ok := reservedIdentifiers[identifier]
	return ok
}

// CheckIdentifier classifies a proposed identifier.
//
// An identifier equal to original (the value before editing) is always OK so
// that saving an unchanged entity never rejects itself. inUse reports whether
// another entity of the same namespace holds the identifier; it may be nil.
func CheckIdentifier(identifier, original string, inUse func(string) bool) models.IdentifierCheckResult {
	if original != "" && identifier == original {
		return models.IdentifierOK
	}
	if IsReserved(identifier) {
		return models.IdentifierReserved
	}
	if strings.TrimSpace(identifier) == "" {
		return models.IdentifierInvalid
	}
	if inUse != nil && inUse(identifier) {
		return models.IdentifierAlreadyInUse
	}
	return models.IdentifierOK
}

// IdentifierChecker checks identifiers of a single namespace.
type IdentifierChecker interface {
	Check(identifier, original string) models.IdentifierCheckResult
}

// CheckerFunc adapts a plain function to [IdentifierChecker].
type CheckerFunc func(identifier, original string) models.IdentifierCheckResult

func (f CheckerFunc) Check(identifier, original string) models.IdentifierCheckResult {
	return f(identifier, original)
}

// Registry is an in-memory set of identifiers per namespace.
// The zero value is not usable; call [NewRegistry].
type Registry struct {
	taken map[models.IdentifierNamespace]map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{taken: make(map[models.IdentifierNamespace]map[string]struct{})}
}

// NewRegistryFromCatalog registers the identifiers of every entity in c.
func NewRegistryFromCatalog(c *Catalog) *Registry {
	r := NewRegistry()
	for _, f := range c.Forms {
		r.Add(models.NamespaceForm, f.Identifier)
	}
	for _, f := range c.Fields {
		r.Add(models.NamespaceField, f.Identifier)
	}
	for _, e := range c.Enums {
		r.Add(models.NamespaceEnum, e.Identifier)
	}
	for _, e := range c.FoodEnums {
		r.Add(models.NamespaceFoodEnum, e.Identifier)
	}
	for _, i := range c.FoodItems {
		r.Add(models.NamespaceFoodItem, i.Identifier)
	}
	return r
}

// Add registers identifier in ns. Empty identifiers are ignored.
func (r *Registry) Add(ns models.IdentifierNamespace, identifier string) {
	if identifier == "" {
		return
	}
	set, ok := r.taken[ns]
	if !ok {
		set = make(map[string]struct{})
		r.taken[ns] = set
	}
	set[identifier] = struct{}{}
}

// Remove unregisters identifier from ns.
func (r *Registry) Remove(ns models.IdentifierNamespace, identifier string) {
	delete(r.taken[ns], identifier)
}

// Contains reports whether identifier is registered in ns.
func (r *Registry) Contains(ns models.IdentifierNamespace, identifier string) bool {
	_, ok := r.taken[ns][identifier]
	return ok
}

// Check runs [CheckIdentifier] against the identifiers registered in ns.
func (r *Registry) Check(ns models.IdentifierNamespace, identifier, original string) models.IdentifierCheckResult {
	return CheckIdentifier(identifier, original, func(s string) bool {
		return r.Contains(ns, s)
	})
}

// Namespace returns a checker bound to ns.
func (r *Registry) Namespace(ns models.IdentifierNamespace) IdentifierChecker {
	return CheckerFunc(func(identifier, original string) models.IdentifierCheckResult {
		return r.Check(ns, identifier, original)
	})
}

// IdentifierAccepted reports whether an editor may save an entity with this
// check result. AlreadyInUse is accepted when the identifier did not change.
func IdentifierAccepted(res models.IdentifierCheckResult, identifier, original string) bool {
	if res == models.IdentifierOK {
		return true
	}
	return res == models.IdentifierAlreadyInUse && original != "" && identifier == original
}
