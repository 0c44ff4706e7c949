package models

// IdentifierCheckResult is the outcome of checking a proposed identifier.
type IdentifierCheckResult string

const (
	IdentifierOK           IdentifierCheckResult = "OK"
	IdentifierAlreadyInUse IdentifierCheckResult = "AlreadyInUse"
	IdentifierReserved     IdentifierCheckResult = "Reserved"
	IdentifierInvalid      IdentifierCheckResult = "Invalid"
)

// Message returns the hint shown next to an identifier input.
// It is empty for IdentifierOK.
func (r IdentifierCheckResult) Message() string {
	switch r {
	case IdentifierAlreadyInUse:
		return "This identifier is already in use."
	case IdentifierReserved:
		return "This identifier is reserved for internal usage."
	case IdentifierInvalid:
		return "Please enter a field identifier."
	}
	return ""
}

// IdentifierNamespace separates identifiers of different entity kinds.
// The same identifier may be used by a form and a field at the same time.
type IdentifierNamespace string

const (
	NamespaceForm     IdentifierNamespace = "form"
	NamespaceField    IdentifierNamespace = "field"
	NamespaceEnum     IdentifierNamespace = "enum"
	NamespaceFoodEnum IdentifierNamespace = "foodenum"
	NamespaceFoodItem IdentifierNamespace = "foodenumitem"
)
