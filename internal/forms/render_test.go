package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

func TestControlForShapes(t *testing.T) {
	want := map[models.FieldType]Shape{
		models.FieldText:        ShapeText,
		models.FieldEmail:       ShapeText,
		models.FieldPhone:       ShapeText,
		models.FieldURL:         ShapeText,
		models.FieldNumber:      ShapeNumber,
		models.FieldCurrency:    ShapeNumber,
		models.FieldPercentage:  ShapeNumber,
		models.FieldSelect:      ShapeDropdown,
		models.FieldRadio:       ShapeRadio,
		models.FieldMultiSelect: ShapeMultiSelect,
		models.FieldCheckbox:    ShapeCheckboxGroup,
		models.FieldSwitch:      ShapeToggle,
		models.FieldTextarea:    ShapeTextarea,
		models.FieldDate:        ShapeDate,
		models.FieldDateTime:    ShapeDateTime,
		models.FieldRating:      ShapeRating,
		models.FieldFile:        ShapeFile,
	}
	require.Len(t, want, len(models.FieldTypes))
	for _, ft := range models.FieldTypes {
		c := ControlFor(models.FormField{ID: "x", Type: ft})
		assert.Equal(t, want[ft], c.Shape, string(ft))
	}
	assert.Equal(t, ShapeText, ControlFor(models.FormField{Type: "bogus"}).Shape)
}

func TestControlForRating(t *testing.T) {
	c := ControlFor(models.FormField{ID: "r", Type: models.FieldRating})
	require.NotNil(t, c.Min)
	require.NotNil(t, c.Max)
	require.NotNil(t, c.Step)
	assert.Equal(t, 1.0, *c.Min)
	assert.Equal(t, 5.0, *c.Max)
	assert.Equal(t, 1.0, *c.Step)
}

func TestControlForCopiesOptions(t *testing.T) {
	field := models.FormField{ID: "s", Type: models.FieldSelect, Options: []string{"a"}}
	c := ControlFor(field)
	c.Options[0] = "z"
	assert.Equal(t, "a", field.Options[0])

	assert.Nil(t, ControlFor(models.FormField{ID: "t", Type: models.FieldText, Options: []string{"a"}}).Options)
}

func TestRenderChange(t *testing.T) {
	var got []models.AttrValue
	field := models.FormField{ID: "age", Type: models.FieldNumber, Label: "Age"}
	c := Render(field, models.Number(1), func(v models.AttrValue) { got = append(got, v) })
	assert.Equal(t, models.Number(1), c.Value)

	require.NoError(t, c.Change("7"))
	assert.Equal(t, []models.AttrValue{models.Number(7)}, got)
	assert.Equal(t, models.Number(7), c.Value)

	err := c.Change("seven")
	requireReason(t, err, validation.ReasonInvalidNumber)
	assert.Len(t, got, 1)
}

func TestRenderRatingRejectsFractions(t *testing.T) {
	calls := 0
	c := Render(models.FormField{ID: "r", Type: models.FieldRating}, models.AttrValue{}, func(models.AttrValue) { calls++ })

	requireReason(t, c.Change(3.5), validation.ReasonOutOfRange)
	requireReason(t, c.Change(0), validation.ReasonOutOfRange)
	require.NoError(t, c.Change(4))
	assert.Equal(t, 1, calls)
}

func TestRenderToggle(t *testing.T) {
	var last models.AttrValue
	c := Render(models.FormField{ID: "s", Type: models.FieldSwitch}, models.Bool(false), func(v models.AttrValue) { last = v })
	require.NoError(t, c.Change(true))
	assert.Equal(t, models.Bool(true), last)
}
