package schema

import (
	"testing"

	"github.com/MKhiriev/f4f-study-portal/models"
	"github.com/stretchr/testify/assert"
)

func subformField(id, formID string) models.InputField {
	f := field(id, models.FormType)
	f.AdtEnumID = ptr(formID)
	return f
}

func TestSubformCycle(t *testing.T) {
	c := catalogOf(
		[]models.InputField{subformField("toB", "B"), subformField("toA", "A"), field("text", models.StringType)},
		[]models.InputForm{
			{ID: "A", Identifier: "a", Fields: []string{"text", "toB"}},
			{ID: "B", Identifier: "b", Fields: []string{"toA"}},
			{ID: "C", Identifier: "c", Fields: []string{"toB"}},
		},
		nil,
	)

	assert.Equal(t, []string{"A", "B", "A"}, SubformCycle(c, "A"))
	assert.Nil(t, SubformCycle(c, "C"))
	assert.Len(t, SubformCycles(c), 2)
	assert.True(t, ValidateSubforms(c, "B").HasCode(CodeSubformCycle))
}

func TestSubformCycle_SelfReference(t *testing.T) {
	c := catalogOf(
		[]models.InputField{subformField("self", "A")},
		[]models.InputForm{{ID: "A", Identifier: "a", Fields: []string{"self"}}},
		nil,
	)
	assert.Equal(t, []string{"A", "A"}, SubformCycle(c, "A"))
}

func TestValidateFieldSubforms(t *testing.T) {
	c := catalogOf(
		[]models.InputField{field("nested", models.StringType)},
		[]models.InputForm{{ID: "A", Identifier: "a", Fields: []string{"nested"}}},
		nil,
	)

	retyped := subformField("nested", "A")
	assert.False(t, ValidateFieldSubforms(c, retyped).OK())
	assert.True(t, ValidateFieldSubforms(c, field("nested", models.IntType)).OK())
}

func TestValidateAll(t *testing.T) {
	c := catalogOf(
		[]models.InputField{field("f1", models.StringType)},
		[]models.InputForm{{ID: "form", Identifier: "daily", Fields: []string{"f1", "f1"}}},
		[]models.InputEnum{enumOf("e", "a")},
	)

	res := ValidateAll(c)

	assert.True(t, res["f1"].OK())
	assert.True(t, res["form"].HasCode(CodeDuplicateField))
	assert.True(t, res["e"].HasCode(CodeTooFewItems))
}
