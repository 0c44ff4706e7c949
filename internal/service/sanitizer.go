package service

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// Sanitizer strips markup from the texts editors type in. Labels and titles
// are plain text; help texts and descriptions may keep safe HTML.
type Sanitizer struct {
	plain *bluemonday.Policy
	rich  *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		plain: bluemonday.StrictPolicy(),
		rich:  bluemonday.UGCPolicy(),
	}
}

// Plain removes every tag. Entities the policy escaped are decoded again so
// that "Fish & Chips" stays readable.
func (s *Sanitizer) Plain(text string) string {
	return html.UnescapeString(s.plain.Sanitize(text))
}

func (s *Sanitizer) Rich(text string) string {
	return s.rich.Sanitize(text)
}

func (s *Sanitizer) plainStr(l models.LocalizedStr) models.LocalizedStr {
	return l.Map(s.Plain)
}

func (s *Sanitizer) plainStrPtr(l *models.LocalizedStr) *models.LocalizedStr {
	if l == nil {
		return nil
	}
	res := l.Map(s.Plain)
	return &res
}

func (s *Sanitizer) richStrPtr(l *models.LocalizedStr) *models.LocalizedStr {
	if l == nil {
		return nil
	}
	res := l.Map(s.Rich)
	return &res
}

func (s *Sanitizer) plainPtr(text *string) *string {
	if text == nil {
		return nil
	}
	res := s.Plain(*text)
	return &res
}

func (s *Sanitizer) Form(f models.InputForm) models.InputForm {
	f.Title = s.plainStrPtr(f.Title)
	f.Description = s.richStrPtr(f.Description)
	return f
}

func (s *Sanitizer) Field(f models.InputField) models.InputField {
	f.Label = s.plainStrPtr(f.Label)
	f.HelpText = s.richStrPtr(f.HelpText)
	f.SliderMinLabel = s.plainPtr(f.SliderMinLabel)
	f.SliderMaxLabel = s.plainPtr(f.SliderMaxLabel)
	f.UnitString = s.plainPtr(f.UnitString)
	return f
}

func (s *Sanitizer) Enum(e models.InputEnum) models.InputEnum {
	items := make([]models.InputEnumItem, len(e.Items))
	for i, it := range e.Items {
		it.Label = s.plainStr(it.Label)
		items[i] = it
	}
	e.Items = items
	return e
}

func (s *Sanitizer) FoodEnum(e models.FoodEnum) models.FoodEnum {
	e.Label = s.plainStr(e.Label)
	e.HelpText = s.richStrPtr(e.HelpText)
	return e
}

func (s *Sanitizer) FoodItem(i models.FoodEnumItem) models.FoodEnumItem {
	i.Label = s.plainStr(i.Label)
	i.ExplicitLabel = s.plainStrPtr(i.ExplicitLabel)
	return i
}

func (s *Sanitizer) FoodImage(i models.FoodImage) models.FoodImage {
	i.Label = s.plainStrPtr(i.Label)
	i.LicenseName = s.plainPtr(i.LicenseName)
	i.SourceInfo = s.plainPtr(i.SourceInfo)
	return i
}

func (s *Sanitizer) Study(st models.Study) models.Study {
	st.Title = s.plainStr(st.Title)
	return st
}
