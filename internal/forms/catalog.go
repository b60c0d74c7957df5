// Package forms builds, validates and renders dynamic form definitions.
// Every operation is pure: drafts are copied on write and saved forms are
// never modified in place.
package forms

import "github.com/hongminglow/dataflow-be/internal/models"

// FieldKind describes one entry of the builder palette.
type FieldKind struct {
	Type        models.FieldType `json:"type"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
}

var catalog = []FieldKind{
	{models.FieldText, "Text", "Single line text input"},
	{models.FieldEmail, "Email", "Email address input"},
	{models.FieldNumber, "Number", "Numeric input"},
	{models.FieldPhone, "Phone", "Phone number input"},
	{models.FieldDate, "Date", "Date picker"},
	{models.FieldDateTime, "Date & Time", "Date and time picker"},
	{models.FieldSelect, "Dropdown", "Single select dropdown"},
	{models.FieldMultiSelect, "Multi Select", "Multiple select dropdown"},
	{models.FieldCheckbox, "Checkbox", "Checkbox options"},
	{models.FieldRadio, "Radio", "Radio button options"},
	{models.FieldTextarea, "Text Area", "Multi-line text input"},
	{models.FieldFile, "File Upload", "File upload field"},
	{models.FieldURL, "URL", "Website URL input"},
	{models.FieldCurrency, "Currency", "Currency amount"},
	{models.FieldPercentage, "Percentage", "Percentage value"},
	{models.FieldRating, "Rating", "Star rating"},
	{models.FieldSwitch, "Switch", "Toggle switch"},
}

// Catalog returns the field palette in display order.
func Catalog() []FieldKind {
	out := make([]FieldKind, len(catalog))
	copy(out, catalog)
	return out
}

// DisplayName returns the palette label for t, or "Field" for unknown types.
func DisplayName(t models.FieldType) string {
	for _, kind := range catalog {
		if kind.Type == t {
			return kind.Label
		}
	}
	return "Field"
}
