package forms

import (
	"math"
	"regexp"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

var validate = validator.New()

// Accepted layouts for date and datetime answers.
var (
	dateLayouts     = []string{time.DateOnly}
	dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02T15:04:05", time.DateTime}
)

// ValidateSubmission checks values against form and stops at the first
// failure. Required fields are checked in field order before any constraint.
func ValidateSubmission(form models.Form, values models.Attributes) error {
	for _, field := range form.Fields {
		if !field.Required || field.Hidden {
			continue
		}
		if values[field.ID].IsEmpty() {
			return validation.ForField(validation.ReasonMissingRequired, field.ID, "%s is required", field.Label)
		}
	}
	for _, field := range form.Fields {
		v, ok := values[field.ID]
		if !ok || v.IsEmpty() {
			continue
		}
		if err := checkValue(field, v); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(field models.FormField, v models.AttrValue) error {
	fail := func(reason validation.Reason, format string, args ...any) error {
		if field.Validation != nil && field.Validation.Message != "" {
			return validation.ForField(reason, field.ID, "%s", field.Validation.Message)
		}
		return validation.ForField(reason, field.ID, format, args...)
	}

	switch field.Type {
	case models.FieldNumber, models.FieldCurrency, models.FieldPercentage, models.FieldRating:
		if v.Kind != models.AttrNumber || !finite(v.Num) {
			return fail(validation.ReasonInvalidNumber, "%s must be a number", field.Label)
		}
		if field.Type == models.FieldPercentage && (v.Num < PercentMin || v.Num > PercentMax) {
			return fail(validation.ReasonOutOfRange, "%s must be from %d to %d", field.Label, PercentMin, PercentMax)
		}
		if field.Type == models.FieldRating && (v.Num < RatingMin || v.Num > RatingMax || v.Num != math.Trunc(v.Num)) {
			return fail(validation.ReasonOutOfRange, "%s must be a whole number from %d to %d", field.Label, RatingMin, RatingMax)
		}
		if !inBounds(field.Validation, v.Num) {
			return fail(validation.ReasonOutOfRange, "%s is out of range", field.Label)
		}
		return nil

	case models.FieldSwitch:
		if v.Kind != models.AttrBool {
			return fail(validation.ReasonInvalidValue, "%s must be on or off", field.Label)
		}
		return nil

	case models.FieldSelect, models.FieldRadio:
		if v.Kind != models.AttrString {
			return fail(validation.ReasonInvalidValue, "%s takes a single option", field.Label)
		}
		if !slices.Contains(field.Options, v.Str) {
			return fail(validation.ReasonUnknownOption, "%q is not an option of %s", v.Str, field.Label)
		}
		return nil

	case models.FieldMultiSelect, models.FieldCheckbox:
		if v.Kind != models.AttrList {
			return fail(validation.ReasonInvalidValue, "%s takes a list of options", field.Label)
		}
		for _, item := range v.List {
			if !slices.Contains(field.Options, item) {
				return fail(validation.ReasonUnknownOption, "%q is not an option of %s", item, field.Label)
			}
		}
		if !inBounds(field.Validation, float64(len(v.List))) {
			return fail(validation.ReasonOutOfRange, "%s has too few or too many selections", field.Label)
		}
		return nil

	case models.FieldDate, models.FieldDateTime:
		layouts := dateLayouts
		if field.Type == models.FieldDateTime {
			layouts = dateTimeLayouts
		}
		if v.Kind != models.AttrString || !parses(v.Str, layouts) {
			return fail(validation.ReasonInvalidDate, "%s is not a valid date", field.Label)
		}
		return nil
	}

	if v.Kind != models.AttrString {
		return fail(validation.ReasonInvalidValue, "%s must be text", field.Label)
	}
	switch field.Type {
	case models.FieldEmail:
		if validate.Var(v.Str, "email") != nil {
			return fail(validation.ReasonInvalidEmail, "%s must be a valid email address", field.Label)
		}
	case models.FieldURL:
		if validate.Var(v.Str, "url") != nil {
			return fail(validation.ReasonInvalidURL, "%s must be a valid URL", field.Label)
		}
	}
	if !inBounds(field.Validation, float64(utf8.RuneCountInString(v.Str))) {
		return fail(validation.ReasonOutOfRange, "%s has an invalid length", field.Label)
	}
	if field.Validation != nil && field.Validation.Pattern != "" {
		re, err := regexp.Compile(field.Validation.Pattern)
		if err != nil || !re.MatchString(v.Str) {
			return fail(validation.ReasonPatternMismatch, "%s has an invalid format", field.Label)
		}
	}
	return nil
}

func inBounds(rule *models.FieldValidation, n float64) bool {
	if rule == nil {
		return true
	}
	if rule.Min != nil && n < *rule.Min {
		return false
	}
	if rule.Max != nil && n > *rule.Max {
		return false
	}
	return true
}

func parses(s string, layouts []string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
