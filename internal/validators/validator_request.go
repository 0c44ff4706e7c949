package validators

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// Field name constants restrict Validate to a subset of checks.
const (
	// FieldID targets the id of a schema entity.
	FieldID = "id"

	FieldUsername = "username"
	FieldPassword = "password"

	// FieldDatatype targets the datatype and elements type of a default
	// value preview.
	FieldDatatype = "datatype"

	FieldFoodEnumID = "food_enum_id"

	// FieldPermissions targets the role permissions of a field.
	FieldPermissions = "permissions"

	// FieldURLs targets the license and source URLs of a food image.
	FieldURLs = "urls"
)

// EntityID is a path parameter naming a stored entity.
type EntityID string

// RequestValidator implements the Validator interface for the request
// bodies and path parameters of the schema API. Both value and pointer
// forms of every model are accepted.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty all
// checks of that type run. Returns ErrUnsupportedType for unknown types.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case EntityID:
		return validateID(string(value), false)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.DefaultValueRequest:
		return v.validateDefaultValue(value, fields...)
	case *models.DefaultValueRequest:
		return v.validateDefaultValue(*value, fields...)
	case models.TransitionRequest:
		return v.validateTransition(value, fields...)
	case *models.TransitionRequest:
		return v.validateTransition(*value, fields...)
	case models.InputField:
		return v.validateField(value, fields...)
	case *models.InputField:
		return v.validateField(*value, fields...)
	case models.FoodImage:
		return v.validateFoodImage(value, fields...)
	case *models.FoodImage:
		return v.validateFoodImage(*value, fields...)
	case models.InputForm:
		return v.validateEntityID(value.ID, fields...)
	case *models.InputForm:
		return v.validateEntityID(value.ID, fields...)
	case models.InputEnum:
		return v.validateEntityID(value.ID, fields...)
	case *models.InputEnum:
		return v.validateEntityID(value.ID, fields...)
	case models.FoodEnum:
		return v.validateEntityID(value.ID, fields...)
	case *models.FoodEnum:
		return v.validateEntityID(value.ID, fields...)
	case models.FoodEnumItem:
		return v.validateEntityID(value.ID, fields...)
	case *models.FoodEnumItem:
		return v.validateEntityID(value.ID, fields...)
	case models.Study:
		return v.validateEntityID(value.ID, fields...)
	case *models.Study:
		return v.validateEntityID(value.ID, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDefaultValue(req models.DefaultValueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDatatype}
	}

	for _, f := range fields {
		switch f {
		case FieldDatatype:
			if !req.Datatype.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidDatatype, req.Datatype)
			}
			if req.Datatype == models.ListType && (req.ElementsType == nil || !req.ElementsType.CanBeListElement()) {
				return fmt.Errorf("%w: list elements", ErrInvalidDatatype)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTransition(req models.TransitionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFoodEnumID}
	}

	for _, f := range fields {
		switch f {
		case FieldFoodEnumID:
			if req.FoodEnumID == "" {
				return ErrEmptyFoodEnumID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateField(field models.InputField, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldPermissions}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(field.ID, true); err != nil {
				return err
			}
		case FieldPermissions:
			for i, p := range field.Permissions {
				if !p.Role.IsValid() || (p.Type != models.PermissionRead && p.Type != models.PermissionEdit) {
					return fmt.Errorf("%w at index %d", ErrInvalidPermission, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateFoodImage(image models.FoodImage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldURLs}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(image.ID, true); err != nil {
				return err
			}
		case FieldURLs:
			for _, u := range []*string{image.LicenseURL, image.SourceURL} {
				if err := validateURL(u); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEntityID(id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldID {
			return ErrUnknownField
		}
	}
	return validateID(id, true)
}

// validateID accepts UUIDs and, when allowNew is set, the markers of a not
// yet stored entity.
func validateID(id string, allowNew bool) error {
	if allowNew && models.IsNewElementID(id) {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEntityID, id)
	}
	return nil
}

// validateURL accepts nil, empty and absolute http(s) URLs.
func validateURL(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.ParseRequestURI(*raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, *raw)
	}
	return nil
}
