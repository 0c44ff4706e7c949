package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntityID   = errors.New("id must be a UUID or the new element id")
	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidDatatype   = errors.New("invalid datatype")
	ErrEmptyFoodEnumID   = errors.New("food_enum_id is required")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrInvalidPermission = errors.New("invalid permission")
)
