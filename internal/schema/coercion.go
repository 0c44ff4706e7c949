package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	EmptyListPlaceholder = "(Empty List)"
	EmptyFormPlaceholder = "(Empty Form Data)"
)

// isoLayouts are the accepted layouts of explicit date and time defaults.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// Default is the result of a coercion. Set is false for "no default", in
// which case Value is nil.
type Default struct {
	Value any
	Set   bool
}

// NoDefault is the fallback of every failed coercion.
func NoDefault() Default {
	return Default{}
}

func withDefault(v any) Default {
	return Default{Value: v, Set: true}
}

// Placeholder returns the text editors show instead of a default input for
// kinds without custom defaults.
func Placeholder(t models.FieldType) string {
	switch t {
	case models.ListType:
		return EmptyListPlaceholder
	case models.FormType:
		return EmptyFormPlaceholder
	}
	return ""
}

// Coerce converts raw into a default for a field of type t. enum is the
// referenced enum for EnumType and may be nil otherwise.
//
// Coerce never fails: whatever cannot be converted yields [NoDefault].
// Integer and float values come back as int64 and float64, dates and times
// as strings.
func Coerce(t models.FieldType, raw any, enum *models.InputEnum) Default {
	if raw == nil {
		return NoDefault()
	}

	switch t {
	case models.StringType:
		return coerceString(raw)
	case models.IntType:
		f, ok := toFloat(raw)
		if !ok {
			return NoDefault()
		}
		n, ok := toInt64(f)
		if !ok {
			return NoDefault()
		}
		return withDefault(n)
	case models.FloatType:
		f, ok := toFloat(raw)
		if !ok {
			return NoDefault()
		}
		return withDefault(f)
	case models.EnumType:
		s, ok := raw.(string)
		if !ok || enum == nil || s == "" || !enum.HasItem(s) {
			return NoDefault()
		}
		return withDefault(s)
	case models.DateType, models.TimeType:
		return coerceTemporal(t, raw)
	}

	// BoolType, ListType, FormType, Container and unknown kinds carry no
	// custom default.
	return NoDefault()
}

// CoerceField coerces the stored default of f, resolving the referenced enum
// through c. c may be nil.
func CoerceField(f models.InputField, c *Catalog) Default {
	var enum *models.InputEnum
	if f.Datatype == models.EnumType && c != nil {
		if e, ok := c.Enums[f.ReferenceID()]; ok {
			enum = &e
		}
	}
	return Coerce(f.Datatype, f.DefaultValue, enum)
}

// Retype changes the datatype of f the way the field editor does: the
// default is re-coerced for the new type and checkbox defaults are always
// cleared. Switching between dates and times keeps a momentary offset.
func Retype(f models.InputField, t models.FieldType, c *Catalog) models.InputField {
	f.Datatype = t
	if t == models.ListType && f.ElementsType == nil {
		elements := models.StringType
		f.ElementsType = &elements
	}
	f.DefaultValue = CoerceField(f, c).Value
	return f
}

func coerceString(raw any) Default {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return NoDefault()
		}
		return withDefault(v)
	case float64:
		return withDefault(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return withDefault(strconv.Itoa(v))
	case int64:
		return withDefault(strconv.FormatInt(v, 10))
	case json.Number:
		return withDefault(v.String())
	}
	return NoDefault()
}

func coerceTemporal(t models.FieldType, raw any) Default {
	switch v := raw.(type) {
	case time.Time:
		return withDefault(v.Format(time.RFC3339))
	case string:
		if m, ok := ParseMomentary(t, v); ok {
			return withDefault(m.String())
		}
		if _, ok := parseISO(v); ok {
			return withDefault(v)
		}
	}
	return NoDefault()
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func toFloat(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		p, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt64 truncates f toward zero. Values outside the int64 range do not fit
// an IntType field.
func toInt64(f float64) (int64, bool) {
	if f >= 0x1p63 || f < -0x1p63 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
