package forms

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// Collect coerces raw submitted values into attributes keyed by exactly the
// form's field ids. Absent fields take their default value, or none.
func Collect(form models.Form, raw map[string]any) (models.Attributes, error) {
	out := make(models.Attributes, len(form.Fields))
	for _, field := range form.Fields {
		value, ok := raw[field.ID]
		if !ok {
			if field.DefaultValue != nil {
				out[field.ID] = field.DefaultValue.Clone()
			} else {
				out[field.ID] = models.AttrValue{}
			}
			continue
		}
		v, err := Coerce(field, value)
		if err != nil {
			return nil, err
		}
		out[field.ID] = v
	}
	return out, nil
}

// Coerce converts one raw JSON value into the shape the field stores.
func Coerce(field models.FormField, raw any) (models.AttrValue, error) {
	if raw == nil {
		return models.AttrValue{}, nil
	}
	switch {
	case field.Type.IsNumeric():
		return coerceNumber(field, raw)
	case field.Type == models.FieldSwitch:
		return coerceBool(field, raw)
	case field.Type.IsMultiChoice():
		return coerceList(field, raw)
	default:
		v, err := models.FromAny(raw)
		if err != nil {
			return models.AttrValue{}, validation.ForField(validation.ReasonInvalidValue, field.ID, "%s: %v", field.Label, err)
		}
		if v.Kind == models.AttrNumber || v.Kind == models.AttrBool {
			return models.String(v.Text()), nil
		}
		if v.Kind == models.AttrList {
			return models.AttrValue{}, validation.ForField(validation.ReasonInvalidValue, field.ID, "%s takes a single value", field.Label)
		}
		return v, nil
	}
}

func coerceNumber(field models.FormField, raw any) (models.AttrValue, error) {
	n, ok := 0.0, false
	switch t := raw.(type) {
	case float64:
		n, ok = t, true
	case int:
		n, ok = float64(t), true
	case json.Number:
		f, err := t.Float64()
		n, ok = f, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return models.AttrValue{}, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		n, ok = f, err == nil
	case models.AttrValue:
		switch t.Kind {
		case models.AttrNone:
			return t, nil
		case models.AttrNumber:
			n, ok = t.Num, true
		default:
			return coerceNumber(field, t.Text())
		}
	}
	// NaN and infinities have no JSON encoding.
	if ok && finite(n) {
		return models.Number(n), nil
	}
	return models.AttrValue{}, validation.ForField(validation.ReasonInvalidNumber, field.ID, "%s must be a number", field.Label)
}

func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

func coerceBool(field models.FormField, raw any) (models.AttrValue, error) {
	switch t := raw.(type) {
	case bool:
		return models.Bool(t), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "on", "yes", "1":
			return models.Bool(true), nil
		case "false", "off", "no", "0", "":
			return models.Bool(false), nil
		}
	case models.AttrValue:
		if t.Kind == models.AttrBool {
			return t, nil
		}
	}
	return models.AttrValue{}, validation.ForField(validation.ReasonInvalidValue, field.ID, "%s must be on or off", field.Label)
}

func coerceList(field models.FormField, raw any) (models.AttrValue, error) {
	if s, ok := raw.(string); ok {
		if strings.TrimSpace(s) == "" {
			return models.List(), nil
		}
		return models.List(s), nil
	}
	v, err := models.FromAny(raw)
	if err != nil || v.Kind != models.AttrList {
		return models.AttrValue{}, validation.ForField(validation.ReasonInvalidValue, field.ID, "%s takes a list of options", field.Label)
	}
	return v, nil
}
