package forms

import (
	"math"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// Shape is the primitive input a renderer draws for a field.
type Shape string

const (
	ShapeText          Shape = "text"
	ShapeNumber        Shape = "number"
	ShapeDropdown      Shape = "dropdown"
	ShapeRadio         Shape = "radio"
	ShapeMultiSelect   Shape = "multi-select"
	ShapeCheckboxGroup Shape = "checkbox-group"
	ShapeToggle        Shape = "toggle"
	ShapeTextarea      Shape = "textarea"
	ShapeDate          Shape = "date"
	ShapeDateTime      Shape = "datetime"
	ShapeRating        Shape = "rating"
	ShapeFile          Shape = "file"
)

// Rating and percentage bounds.
const (
	RatingMin  = 1
	RatingMax  = 5
	PercentMin = 0
	PercentMax = 100
)

// Control describes how to draw one field and holds its current value.
type Control struct {
	FieldID     string           `json:"fieldId"`
	Shape       Shape            `json:"shape"`
	InputType   string           `json:"inputType,omitempty"`
	Label       string           `json:"label"`
	Placeholder string           `json:"placeholder,omitempty"`
	HelpText    string           `json:"helpText,omitempty"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options,omitempty"`
	Min         *float64         `json:"min,omitempty"`
	Max         *float64         `json:"max,omitempty"`
	Step        *float64         `json:"step,omitempty"`
	Value       models.AttrValue `json:"value"`

	field    models.FormField
	onChange func(models.AttrValue)
}

func ptr(f float64) *float64 { return &f }

// ControlFor maps a field to its control shape. Unknown types render as text.
func ControlFor(field models.FormField) Control {
	c := Control{
		FieldID:     field.ID,
		Label:       field.Label,
		Placeholder: field.Placeholder,
		HelpText:    field.HelpText,
		Required:    field.Required,
		field:       field.Clone(),
	}

	switch field.Type {
	case models.FieldText, models.FieldEmail, models.FieldPhone, models.FieldURL:
		c.Shape = ShapeText
		c.InputType = string(field.Type)
	case models.FieldNumber:
		c.Shape = ShapeNumber
		c.InputType = "number"
	case models.FieldCurrency:
		c.Shape = ShapeNumber
		c.InputType = "number"
		c.Step = ptr(0.01)
	case models.FieldPercentage:
		c.Shape = ShapeNumber
		c.InputType = "number"
		c.Min, c.Max = ptr(PercentMin), ptr(PercentMax)
	case models.FieldRating:
		c.Shape = ShapeRating
		c.Min, c.Max, c.Step = ptr(RatingMin), ptr(RatingMax), ptr(1)
	case models.FieldSelect:
		c.Shape = ShapeDropdown
	case models.FieldRadio:
		c.Shape = ShapeRadio
	case models.FieldMultiSelect:
		c.Shape = ShapeMultiSelect
	case models.FieldCheckbox:
		c.Shape = ShapeCheckboxGroup
	case models.FieldSwitch:
		c.Shape = ShapeToggle
	case models.FieldTextarea:
		c.Shape = ShapeTextarea
	case models.FieldDate:
		c.Shape = ShapeDate
		c.InputType = "date"
	case models.FieldDateTime:
		c.Shape = ShapeDateTime
		c.InputType = "datetime-local"
	case models.FieldFile:
		c.Shape = ShapeFile
		c.InputType = "file"
	default:
		c.Shape = ShapeText
		c.InputType = "text"
	}

	if field.Type.IsChoice() {
		c.Options = append([]string{}, field.Options...)
	}
	if field.Type.IsNumeric() && field.Type != models.FieldRating && field.Validation != nil {
		if field.Validation.Min != nil {
			c.Min = ptr(*field.Validation.Min)
		}
		if field.Validation.Max != nil {
			c.Max = ptr(*field.Validation.Max)
		}
	}
	return c
}

// Render binds a control to value and a change callback.
func Render(field models.FormField, value models.AttrValue, onChange func(models.AttrValue)) Control {
	c := ControlFor(field)
	c.Value = value.Clone()
	c.onChange = onChange
	return c
}

// Change coerces raw input, stores it as the control's value and passes it to
// the change callback. Ratings only take whole stars.
func (c *Control) Change(raw any) error {
	v, err := Coerce(c.field, raw)
	if err != nil {
		return err
	}
	if c.Shape == ShapeRating && v.Kind == models.AttrNumber {
		if v.Num < RatingMin || v.Num > RatingMax || v.Num != math.Trunc(v.Num) {
			return validation.ForField(validation.ReasonOutOfRange, c.FieldID, "%s must be a whole number from %d to %d", c.Label, RatingMin, RatingMax)
		}
	}
	c.Value = v
	if c.onChange != nil {
		c.onChange(v.Clone())
	}
	return nil
}
