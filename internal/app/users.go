package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hongminglow/dataflow-be/internal/forms"
	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// UserFilter narrows ListUsers. Zero values match everything.
type UserFilter struct {
	Search  string
	Status  models.UserStatus
	Role    models.Role
	Page    int
	PerPage int
}

// ListUsers filters by name/email search, status and role, then paginates.
func (a *App) ListUsers(f UserFilter) Page[models.User] {
	q := normalize(f.Search)
	var out []models.User
	for _, u := range a.store.Users().Items {
		if q != "" && !contains(u.Name, q) && !contains(u.Email, q) {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		out = append(out, u.Public())
	}
	return paginate(out, f.Page, f.PerPage)
}

// GetUser returns one user.
func (a *App) GetUser(id string) (models.User, error) {
	u, ok := a.store.Users().Find(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u.Public(), nil
}

// CreateUserFromForm validates a submission of an active form and adds a
// user whose custom data is the submission.
func (a *App) CreateUserFromForm(ctx context.Context, actor Actor, req dto.CreateUserRequest) (models.User, error) {
	if err := a.check(req); err != nil {
		return models.User{}, err
	}
	var created models.User
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		form, ok := findByID(st.Forms, req.FormID)
		if !ok {
			return nil, fmt.Errorf("form %s: %w", req.FormID, ErrNotFound)
		}
		if !form.IsActive {
			return nil, validation.ForField(validation.ReasonInactiveForm, "formId", "form %q is not active", form.Name)
		}
		values, err := forms.Collect(form, req.Values)
		if err != nil {
			return nil, err
		}
		if err := forms.ValidateSubmission(form, values); err != nil {
			return nil, err
		}
		if t := st.Tenant; t != nil && t.MaxUsers > 0 && len(st.Users) >= t.MaxUsers {
			return nil, validation.New(validation.ReasonQuotaExceeded, "user limit of %d reached", t.MaxUsers)
		}

		now := a.now()
		created = models.User{
			ID:         ids.NewAt("user", now),
			Email:      userEmail(form, values),
			Name:       userName(form, values),
			Role:       models.RoleUser,
			Status:     models.StatusActive,
			CreatedAt:  now,
			LastLogin:  &now,
			CustomData: values,
		}
		created.Avatar = avatarFor(created.ID)
		return []store.Action{
			store.AddUser{User: created},
			a.activity(actor, models.ActionCreated, models.EntityUser, created.ID, models.Attributes{
				"name": models.String(created.Name),
				"form": models.String(form.Name),
			}),
			a.notification(models.NotifyInfo, "New User Registered", created.Name+" has successfully registered.", "/users/"+created.ID),
		}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return created, a.save(ctx, storage.KeyUsers, storage.KeyActivityLogs, storage.KeyNotifications)
}

// userEmail takes the first email field's answer.
func userEmail(form models.Form, values models.Attributes) string {
	for _, f := range form.Fields {
		if f.Type == models.FieldEmail {
			if v := strings.TrimSpace(values[f.ID].Text()); v != "" {
				return v
			}
			break
		}
	}
	return "no-email@example.com"
}

// userName takes the first text field whose label mentions a name.
func userName(form models.Form, values models.Attributes) string {
	for _, f := range form.Fields {
		if f.Type == models.FieldText && strings.Contains(strings.ToLower(f.Label), "name") {
			if v := strings.TrimSpace(values[f.ID].Text()); v != "" {
				return v
			}
			break
		}
	}
	return "Unnamed User"
}

// UpdateUser applies a partial update.
func (a *App) UpdateUser(ctx context.Context, actor Actor, id string, req dto.UpdateUserRequest) (models.User, error) {
	if err := a.check(req); err != nil {
		return models.User{}, err
	}
	var updated models.User
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		u, ok := findByID(st.Users, id)
		if !ok {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		changed := models.Attributes{}
		if req.Name != nil {
			u.Name = strings.TrimSpace(*req.Name)
			changed["name"] = models.String(u.Name)
		}
		if req.Email != nil {
			u.Email = strings.TrimSpace(*req.Email)
			changed["email"] = models.String(u.Email)
		}
		if req.Role != nil {
			u.Role = *req.Role
			changed["role"] = models.String(string(u.Role))
		}
		if req.Status != nil {
			u.Status = *req.Status
			changed["status"] = models.String(string(u.Status))
		}
		if req.Avatar != nil {
			u.Avatar = *req.Avatar
		}
		updated = u
		return []store.Action{
			store.UpdateUser{User: u},
			a.activity(actor, models.ActionUpdated, models.EntityUser, u.ID, changed),
		}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return updated.Public(), a.save(ctx, storage.KeyUsers, storage.KeyActivityLogs)
}

// ToggleUserStatus flips an active user to inactive and anything else to active.
func (a *App) ToggleUserStatus(ctx context.Context, actor Actor, id string) (models.User, error) {
	var updated models.User
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		u, ok := findByID(st.Users, id)
		if !ok {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		if u.Status == models.StatusActive {
			u.Status = models.StatusInactive
		} else {
			u.Status = models.StatusActive
		}
		updated = u
		return []store.Action{
			store.UpdateUser{User: u},
			a.activity(actor, models.ActionUpdated, models.EntityUser, u.ID, models.Attributes{"status": models.String(string(u.Status))}),
		}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return updated.Public(), a.save(ctx, storage.KeyUsers, storage.KeyActivityLogs)
}

// DeleteUser removes a user.
func (a *App) DeleteUser(ctx context.Context, actor Actor, id string) error {
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		u, ok := findByID(st.Users, id)
		if !ok {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return []store.Action{
			store.DeleteUser{ID: id},
			a.activity(actor, models.ActionDeleted, models.EntityUser, id, models.Attributes{"name": models.String(u.Name)}),
		}, nil
	})
	if err != nil {
		return err
	}
	return a.save(ctx, storage.KeyUsers, storage.KeyActivityLogs)
}

type keyed interface{ Key() string }

func findByID[E keyed](items []E, id string) (E, bool) {
	for _, item := range items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}
