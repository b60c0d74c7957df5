package app

import (
	"context"
	"fmt"

	"github.com/hongminglow/dataflow-be/internal/forms"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// FormFilter narrows ListForms.
type FormFilter struct {
	Search     string
	Category   string
	ActiveOnly bool
}

// ListForms returns forms whose name or description matches the search.
func (a *App) ListForms(f FormFilter) []models.Form {
	q := normalize(f.Search)
	out := []models.Form{}
	for _, form := range a.store.Forms().Items {
		if q != "" && !contains(form.Name, q) && !contains(form.Description, q) {
			continue
		}
		if f.Category != "" && form.Category != f.Category {
			continue
		}
		if f.ActiveOnly && !form.IsActive {
			continue
		}
		out = append(out, form)
	}
	return out
}

// GetForm returns one form.
func (a *App) GetForm(id string) (models.Form, error) {
	form, ok := a.store.Forms().Find(id)
	if !ok {
		return models.Form{}, fmt.Errorf("form %s: %w", id, ErrNotFound)
	}
	return form, nil
}

// FormControls returns the controls to render for a form, in field order.
// Hidden fields are left out.
func (a *App) FormControls(id string) ([]forms.Control, error) {
	form, err := a.GetForm(id)
	if err != nil {
		return nil, err
	}
	controls := []forms.Control{}
	for _, field := range forms.Ordered(form.Fields) {
		if field.Hidden {
			continue
		}
		value := models.AttrValue{}
		if field.DefaultValue != nil {
			value = *field.DefaultValue
		}
		controls = append(controls, forms.Render(field, value, nil))
	}
	return controls, nil
}

// CheckSubmission coerces and validates a submission without storing it.
func (a *App) CheckSubmission(id string, raw map[string]any) (models.Attributes, error) {
	form, err := a.GetForm(id)
	if err != nil {
		return nil, err
	}
	values, err := forms.Collect(form, raw)
	if err != nil {
		return nil, err
	}
	if err := forms.ValidateSubmission(form, values); err != nil {
		return nil, err
	}
	return values, nil
}

// SaveForm creates a form, or edits it when the draft id names a stored form.
func (a *App) SaveForm(ctx context.Context, actor Actor, draft forms.Draft) (models.Form, error) {
	var saved models.Form
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		var existing *models.Form
		if draft.ID != "" {
			if f, ok := findByID(st.Forms, draft.ID); ok {
				existing = &f
			}
		}
		if existing == nil {
			if t := st.Tenant; t != nil && t.MaxForms > 0 && len(st.Forms) >= t.MaxForms {
				return nil, validation.New(validation.ReasonQuotaExceeded, "form limit of %d reached", t.MaxForms)
			}
		}
		form, err := forms.Save(draft, existing, actor.UserID, a.now())
		if err != nil {
			return nil, err
		}
		saved = form
		details := models.Attributes{"name": models.String(form.Name)}
		if existing != nil {
			return []store.Action{
				store.UpdateForm{Form: form},
				a.activity(actor, models.ActionUpdated, models.EntityForm, form.ID, details),
			}, nil
		}
		return []store.Action{
			store.AddForm{Form: form},
			a.activity(actor, models.ActionCreated, models.EntityForm, form.ID, details),
		}, nil
	})
	if err != nil {
		return models.Form{}, err
	}
	return saved, a.save(ctx, storage.KeyForms, storage.KeyActivityLogs)
}

// DeleteForm removes a form. Users created from it keep their data.
func (a *App) DeleteForm(ctx context.Context, actor Actor, id string) error {
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		form, ok := findByID(st.Forms, id)
		if !ok {
			return nil, fmt.Errorf("form %s: %w", id, ErrNotFound)
		}
		return []store.Action{
			store.DeleteForm{ID: id},
			a.activity(actor, models.ActionDeleted, models.EntityForm, id, models.Attributes{"name": models.String(form.Name)}),
		}, nil
	})
	if err != nil {
		return err
	}
	return a.save(ctx, storage.KeyForms, storage.KeyActivityLogs)
}
