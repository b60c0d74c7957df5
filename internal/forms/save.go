package forms

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// Save turns a draft into a form definition. existing is the stored form when
// editing, nil when creating; its identity and creation stamp are kept.
func Save(d Draft, existing *models.Form, actor string, now time.Time) (models.Form, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.Form{}, validation.New(validation.ReasonBlankName, "form name is required")
	}
	if len(d.Fields) == 0 {
		return models.Form{}, validation.New(validation.ReasonNoFields, "add at least one field")
	}

	fields := models.CloneFields(d.Fields)
	seen := make(map[string]struct{}, len(fields))
	for i := range fields {
		f := &fields[i]
		if f.ID == "" {
			f.ID = ids.NewAt("field", now)
		}
		if _, dup := seen[f.ID]; dup {
			return models.Form{}, validation.ForField(validation.ReasonDuplicateFieldID, f.ID, "field id %q is used twice", f.ID)
		}
		seen[f.ID] = struct{}{}
		if err := checkField(*f); err != nil {
			return models.Form{}, err
		}
		if !f.Type.IsChoice() {
			f.Options = nil
		}
		if f.Order <= 0 {
			f.Order = i + 1
		}
	}

	form := models.Form{
		ID:          d.ID,
		Name:        name,
		Description: strings.TrimSpace(d.Description),
		Fields:      fields,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actor,
		IsActive:    true,
		Category:    d.Category,
		Icon:        d.Icon,
	}
	if d.IsActive != nil {
		form.IsActive = *d.IsActive
	}
	if existing != nil {
		form.ID = existing.ID
		form.CreatedAt = existing.CreatedAt
		form.CreatedBy = existing.CreatedBy
	}
	if form.ID == "" {
		form.ID = ids.NewAt("form", now)
	}
	return form, nil
}

func checkField(f models.FormField) error {
	if !f.Type.Valid() {
		return validation.ForField(validation.ReasonUnknownFieldType, f.ID, "unknown field type %q", f.Type)
	}
	if f.Type.IsChoice() && len(f.Options) == 0 {
		return validation.ForField(validation.ReasonMissingOptions, f.ID, "%s needs at least one option", f.Label)
	}
	if v := f.Validation; v != nil {
		if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
			return validation.ForField(validation.ReasonInvalidValue, f.ID, "min is greater than max")
		}
		if v.Pattern != "" {
			if _, err := regexp.Compile(v.Pattern); err != nil {
				return validation.ForField(validation.ReasonInvalidValue, f.ID, "invalid pattern: %v", err)
			}
		}
	}
	return nil
}

// Ordered returns a copy of fields sorted by Order. Equal orders keep their
// list position.
func Ordered(fields []models.FormField) []models.FormField {
	out := models.CloneFields(fields)
	slices.SortStableFunc(out, func(a, b models.FormField) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}
