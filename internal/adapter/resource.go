package adapter

import (
	"fmt"
	"net/url"
)

// Resource names a kind of schema entity on the server API.
type Resource string

const (
	ResourceForm      Resource = "form"
	ResourceField     Resource = "field"
	ResourceEnum      Resource = "enum"
	ResourceStudy     Resource = "study"
	ResourceFoodEnum  Resource = "foodenum"
	ResourceFoodItem  Resource = "foodenumitem"
	ResourceFoodImage Resource = "foodimage"
)

// Resources lists every resource in the order the admin client shows them.
var Resources = []Resource{
	ResourceStudy,
	ResourceForm,
	ResourceField,
	ResourceEnum,
	ResourceFoodEnum,
	ResourceFoodItem,
	ResourceFoodImage,
}

func (r Resource) scope() string {
	switch r {
	case ResourceForm, ResourceField, ResourceEnum:
		return "/forms"
	case ResourceStudy, ResourceFoodEnum, ResourceFoodItem, ResourceFoodImage:
		return "/schema"
	}
	return ""
}

// Valid reports whether r is a known resource.
func (r Resource) Valid() bool {
	return r.scope() != ""
}

func (r Resource) itemPath(id string) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedResource, r)
	}
	return r.scope() + "/" + string(r) + "/" + url.PathEscape(id), nil
}

func (r Resource) validatePath() (string, error) {
	if !r.Valid() || r == ResourceFoodImage {
		return "", fmt.Errorf("%w: %q cannot be validated", ErrUnsupportedResource, r)
	}
	return r.scope() + "/validate/" + string(r), nil
}

// checkIdentifierPath returns the path of the identifier check. Forms are
// checked at the root of /forms.
func (r Resource) checkIdentifierPath(identifier string) (string, error) {
	escaped := url.PathEscape(identifier)
	switch r {
	case ResourceForm:
		return "/forms/check_identifier/" + escaped, nil
	case ResourceField, ResourceEnum, ResourceFoodEnum, ResourceFoodItem:
		return r.scope() + "/" + string(r) + "/check_identifier/" + escaped, nil
	}
	return "", fmt.Errorf("%w: %q has no identifier", ErrUnsupportedResource, r)
}
