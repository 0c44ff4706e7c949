package models

import (
	"encoding/json"
	"errors"
	"sort"
)

// DefaultLanguage is used by [LocalizedStr.Text] when a translation is missing.
const DefaultLanguage = "en"

var errLocalizedStrFormat = errors.New("localized string must be a string or an object of strings")

// LocalizedStr is a text that is either language independent or translated.
// On the wire it is a plain JSON string or an object mapping language codes
// to strings.
type LocalizedStr struct {
	// Plain holds the language independent value.
	Plain string

	// Translations maps language codes to text. When set, Plain is ignored.
	Translations map[string]string
}

// NewLocalizedStr returns a language independent [LocalizedStr].
func NewLocalizedStr(s string) LocalizedStr {
	return LocalizedStr{Plain: s}
}

// IsEmpty reports whether no language carries a non-empty value.
func (l LocalizedStr) IsEmpty() bool {
	if len(l.Translations) == 0 {
		return l.Plain == ""
	}
	for _, v := range l.Translations {
		if v != "" {
			return false
		}
	}
	return true
}

// Text returns the value for lang, falling back to [DefaultLanguage] and then
// to the first language in alphabetical order.
func (l LocalizedStr) Text(lang string) string {
	if len(l.Translations) == 0 {
		return l.Plain
	}
	if v, ok := l.Translations[lang]; ok {
		return v
	}
	if v, ok := l.Translations[DefaultLanguage]; ok {
		return v
	}
	langs := make([]string, 0, len(l.Translations))
	for k := range l.Translations {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return l.Translations[langs[0]]
}

// Map applies fn to every stored text and returns the result.
func (l LocalizedStr) Map(fn func(string) string) LocalizedStr {
	if len(l.Translations) == 0 {
		return LocalizedStr{Plain: fn(l.Plain)}
	}
	res := make(map[string]string, len(l.Translations))
	for k, v := range l.Translations {
		res[k] = fn(v)
	}
	return LocalizedStr{Translations: res}
}

func (l LocalizedStr) MarshalJSON() ([]byte, error) {
	if len(l.Translations) > 0 {
		return json.Marshal(l.Translations)
	}
	return json.Marshal(l.Plain)
}

func (l *LocalizedStr) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LocalizedStr{Plain: s}
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return errLocalizedStrFormat
	}
	*l = LocalizedStr{Translations: m}
	return nil
}

// MarshalYAML renders the same shape as the JSON form.
func (l LocalizedStr) MarshalYAML() (any, error) {
	if len(l.Translations) > 0 {
		return l.Translations, nil
	}
	return l.Plain, nil
}
