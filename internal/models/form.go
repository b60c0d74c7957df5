package models

import "time"

// FieldType is the closed set of input kinds a form field can take.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldEmail       FieldType = "email"
	FieldNumber      FieldType = "number"
	FieldPhone       FieldType = "tel"
	FieldDate        FieldType = "date"
	FieldDateTime    FieldType = "datetime"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldCheckbox    FieldType = "checkbox"
	FieldRadio       FieldType = "radio"
	FieldTextarea    FieldType = "textarea"
	FieldFile        FieldType = "file"
	FieldURL         FieldType = "url"
	FieldCurrency    FieldType = "currency"
	FieldPercentage  FieldType = "percentage"
	FieldRating      FieldType = "rating"
	FieldSwitch      FieldType = "switch"
)

// FieldTypes lists every field type in palette order.
var FieldTypes = []FieldType{
	FieldText, FieldEmail, FieldNumber, FieldPhone, FieldDate, FieldDateTime,
	FieldSelect, FieldMultiSelect, FieldCheckbox, FieldRadio, FieldTextarea,
	FieldFile, FieldURL, FieldCurrency, FieldPercentage, FieldRating, FieldSwitch,
}

// Valid reports whether t is one of FieldTypes.
func (t FieldType) Valid() bool {
	for _, known := range FieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsChoice reports whether the field carries an options list.
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldSelect, FieldMultiSelect, FieldCheckbox, FieldRadio:
		return true
	}
	return false
}

// IsMultiChoice reports whether more than one option may be picked.
func (t FieldType) IsMultiChoice() bool {
	return t == FieldMultiSelect || t == FieldCheckbox
}

// IsNumeric reports whether answers are numbers.
func (t FieldType) IsNumeric() bool {
	switch t {
	case FieldNumber, FieldCurrency, FieldPercentage, FieldRating:
		return true
	}
	return false
}

// FieldValidation holds optional bounds. For text fields Min/Max bound the length.
type FieldValidation struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
	Message string   `json:"message,omitempty"`
}

// FormField is one input descriptor of a form.
type FormField struct {
	ID           string           `json:"id"`
	Type         FieldType        `json:"type"`
	Label        string           `json:"label"`
	Placeholder  string           `json:"placeholder,omitempty"`
	HelpText     string           `json:"helpText,omitempty"`
	Required     bool             `json:"required"`
	Options      []string         `json:"options,omitempty"`
	Validation   *FieldValidation `json:"validation,omitempty"`
	DefaultValue *AttrValue       `json:"defaultValue,omitempty"`
	Order        int              `json:"order"`
	Hidden       bool             `json:"hidden,omitempty"`
}

// Clone returns a deep copy.
func (f FormField) Clone() FormField {
	if f.Options != nil {
		f.Options = append([]string(nil), f.Options...)
	}
	if f.Validation != nil {
		v := *f.Validation
		v.Min = cloneFloat(v.Min)
		v.Max = cloneFloat(v.Max)
		f.Validation = &v
	}
	if f.DefaultValue != nil {
		d := f.DefaultValue.Clone()
		f.DefaultValue = &d
	}
	return f
}

// Form is a saved form definition.
type Form struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Fields      []FormField `json:"fields"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	CreatedBy   string      `json:"createdBy"`
	IsActive    bool        `json:"isActive"`
	Category    string      `json:"category,omitempty"`
	Icon        string      `json:"icon,omitempty"`
}

func (f Form) Key() string { return f.ID }

// Clone returns a deep copy.
func (f Form) Clone() Form {
	f.Fields = CloneFields(f.Fields)
	return f
}

// Field returns the field with the given id.
func (f Form) Field(id string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FormField{}, false
}

// CloneFields deep-copies a field list; nil stays nil.
func CloneFields(fields []FormField) []FormField {
	if fields == nil {
		return nil
	}
	out := make([]FormField, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}
