package forms

import (
	"fmt"

	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// DefaultCategory is the category a fresh draft starts in.
const DefaultCategory = "General"

// Draft is a form under construction. It becomes a models.Form through Save.
type Draft struct {
	ID          string             `json:"id,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Fields      []models.FormField `json:"fields"`
	IsActive    *bool              `json:"isActive,omitempty"`
	Category    string             `json:"category,omitempty"`
	Icon        string             `json:"icon,omitempty"`
}

// NewDraft returns an empty, active draft.
func NewDraft() Draft {
	active := true
	return Draft{
		Fields:   []models.FormField{},
		IsActive: &active,
		Category: DefaultCategory,
	}
}

// DraftFrom opens a saved form for editing.
func DraftFrom(f models.Form) Draft {
	active := f.IsActive
	return Draft{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Fields:      models.CloneFields(f.Fields),
		IsActive:    &active,
		Category:    f.Category,
		Icon:        f.Icon,
	}
}

func (d Draft) withFields(fields []models.FormField) Draft {
	d.Fields = fields
	if d.IsActive != nil {
		active := *d.IsActive
		d.IsActive = &active
	}
	return d
}

func (d Draft) indexOf(id string) int {
	for i, f := range d.Fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// AddField appends a new field of type t with a default label. Choice fields
// start with a single "Option 1".
func AddField(d Draft, t models.FieldType) (Draft, error) {
	if !t.Valid() {
		return d, validation.New(validation.ReasonUnknownFieldType, "unknown field type %q", t)
	}
	field := models.FormField{
		ID:       ids.New("field"),
		Type:     t,
		Label:    "New " + DisplayName(t),
		Required: false,
		Order:    len(d.Fields) + 1,
	}
	if t.IsChoice() {
		field.Options = []string{"Option 1"}
	}
	fields := append(models.CloneFields(d.Fields), field)
	return d.withFields(fields), nil
}

// UpdateField replaces the field with the same id. Unknown ids are a no-op.
func UpdateField(d Draft, field models.FormField) Draft {
	i := d.indexOf(field.ID)
	if i < 0 {
		return d
	}
	fields := models.CloneFields(d.Fields)
	fields[i] = field.Clone()
	return d.withFields(fields)
}

// DuplicateField appends a copy of field under a new id, labelled as a copy.
func DuplicateField(d Draft, field models.FormField) Draft {
	dup := field.Clone()
	dup.ID = ids.New("field")
	dup.Label = field.Label + " (Copy)"
	dup.Order = len(d.Fields) + 1
	fields := append(models.CloneFields(d.Fields), dup)
	return d.withFields(fields)
}

// DeleteField removes the field with the given id. Unknown ids are a no-op.
func DeleteField(d Draft, fieldID string) Draft {
	i := d.indexOf(fieldID)
	if i < 0 {
		return d
	}
	fields := make([]models.FormField, 0, len(d.Fields)-1)
	for j, f := range d.Fields {
		if j != i {
			fields = append(fields, f.Clone())
		}
	}
	return d.withFields(fields)
}

// AddOption appends "Option N" to the field's options.
func AddOption(d Draft, fieldID string) Draft {
	return editOptions(d, fieldID, func(opts []string) []string {
		return append(opts, fmt.Sprintf("Option %d", len(opts)+1))
	})
}

// UpdateOption replaces the option at index. Duplicate text is allowed.
func UpdateOption(d Draft, fieldID string, index int, text string) (Draft, error) {
	if err := checkOptionIndex(d, fieldID, index); err != nil {
		return d, err
	}
	return editOptions(d, fieldID, func(opts []string) []string {
		opts[index] = text
		return opts
	}), nil
}

// DeleteOption removes the option at index.
func DeleteOption(d Draft, fieldID string, index int) (Draft, error) {
	if err := checkOptionIndex(d, fieldID, index); err != nil {
		return d, err
	}
	return editOptions(d, fieldID, func(opts []string) []string {
		return append(opts[:index], opts[index+1:]...)
	}), nil
}

func checkOptionIndex(d Draft, fieldID string, index int) error {
	i := d.indexOf(fieldID)
	if i < 0 {
		return nil
	}
	if index < 0 || index >= len(d.Fields[i].Options) {
		return validation.ForField(validation.ReasonOptionIndex, fieldID, "option %d out of range", index)
	}
	return nil
}

func editOptions(d Draft, fieldID string, edit func([]string) []string) Draft {
	i := d.indexOf(fieldID)
	if i < 0 {
		return d
	}
	fields := models.CloneFields(d.Fields)
	opts := append([]string{}, fields[i].Options...)
	fields[i].Options = edit(opts)
	return d.withFields(fields)
}
