package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/f4f-study-portal/models"
)

func TestSanitizer_Plain(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		in, want string
	}{
		{"Weight", "Weight"},
		{"<b>Weight</b>", "Weight"},
		{"Fish & Chips", "Fish & Chips"},
		{`<img src=x onerror="alert(1)">Apple`, "Apple"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Plain(tt.in), tt.in)
	}
}

func TestSanitizer_Rich_KeepsSafeMarkup(t *testing.T) {
	s := NewSanitizer()

	out := s.Rich(`<p>Take <strong>all</strong> pills</p><script>alert(1)</script>`)

	assert.Contains(t, out, "<strong>all</strong>")
	assert.NotContains(t, out, "script")
}

func TestSanitizer_Field(t *testing.T) {
	s := NewSanitizer()

	f := models.InputField{
		Label:          &models.LocalizedStr{Translations: map[string]string{"en": "<u>Weight</u>", "de": "Gewicht"}},
		HelpText:       lstr(`<em>kg</em><iframe src="x"></iframe>`),
		UnitString:     strPtr("<b>kg</b>"),
		SliderMinLabel: nil,
	}

	got := s.Field(f)

	assert.Equal(t, "Weight", got.Label.Text("en"))
	assert.Equal(t, "Gewicht", got.Label.Text("de"))
	assert.Equal(t, "<em>kg</em>", got.HelpText.Text("en"))
	assert.Equal(t, "kg", *got.UnitString)
	assert.Nil(t, got.SliderMinLabel)
	// the input is left untouched
	assert.Equal(t, "<u>Weight</u>", f.Label.Translations["en"])
}

func TestSanitizer_EnumAndFoodItems(t *testing.T) {
	s := NewSanitizer()

	e := s.Enum(models.InputEnum{Items: []models.InputEnumItem{{Identifier: "y", Label: models.NewLocalizedStr("<b>Yes</b>")}}})
	assert.Equal(t, "Yes", e.Items[0].Label.Plain)

	it := s.FoodItem(models.FoodEnumItem{Label: models.NewLocalizedStr("<i>Apple</i>"), ExplicitLabel: lstr("<i>1 apple</i>")})
	assert.Equal(t, "Apple", it.Label.Plain)
	assert.Equal(t, "1 apple", it.ExplicitLabel.Plain)

	st := s.Study(models.Study{Title: models.NewLocalizedStr("<h1>f4f</h1>")})
	assert.Equal(t, "f4f", st.Title.Plain)
}
