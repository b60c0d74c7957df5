package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// Settings is the tenant-wide configuration view.
type Settings struct {
	Tenant  *models.Tenant       `json:"tenant"`
	Theme   models.ThemeSettings `json:"theme"`
	Modules []models.Module      `json:"modules"`
}

func (a *App) Settings() Settings {
	return Settings{
		Tenant:  a.store.Tenant(),
		Theme:   a.store.Theme().Theme,
		Modules: a.store.Modules().Modules,
	}
}

// UpdateBranding patches the tenant. Color and font changes are mirrored
// into the theme.
func (a *App) UpdateBranding(ctx context.Context, actor Actor, req dto.BrandingRequest) (models.Tenant, error) {
	if err := a.check(req); err != nil {
		return models.Tenant{}, err
	}
	var updated models.Tenant
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		if st.Tenant == nil {
			return nil, fmt.Errorf("tenant: %w", ErrNotFound)
		}
		t := st.Tenant.Clone()
		changed := models.Attributes{}
		set := func(key string, dst *string, src *string) {
			if src != nil {
				*dst = strings.TrimSpace(*src)
				changed[key] = models.String(*dst)
			}
		}
		set("name", &t.Name, req.Name)
		set("logo", &t.Logo, req.Logo)
		set("favicon", &t.Favicon, req.Favicon)
		set("primaryColor", &t.PrimaryColor, req.PrimaryColor)
		set("secondaryColor", &t.SecondaryColor, req.SecondaryColor)
		set("accentColor", &t.AccentColor, req.AccentColor)
		set("fontFamily", &t.FontFamily, req.FontFamily)
		set("customCss", &t.CustomCSS, req.CustomCSS)
		updated = t

		patch := models.ThemePatch{
			PrimaryColor:   req.PrimaryColor,
			SecondaryColor: req.SecondaryColor,
			AccentColor:    req.AccentColor,
			FontFamily:     req.FontFamily,
		}
		return []store.Action{
			store.SetTenant{Tenant: &t},
			store.SetTheme{Patch: patch},
			a.activity(actor, models.ActionUpdated, models.EntitySetting, t.ID, changed),
		}, nil
	})
	if err != nil {
		return models.Tenant{}, err
	}
	return updated, a.save(ctx, storage.KeyTenant, storage.KeyActivityLogs)
}

// ToggleModule flips a module and keeps the tenant's enabled list in step.
func (a *App) ToggleModule(ctx context.Context, actor Actor, id models.ModuleID) (models.Module, error) {
	var toggled models.Module
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		m, ok := findByID(st.Modules, string(id))
		if !ok {
			return nil, fmt.Errorf("module %s: %w", id, ErrNotFound)
		}
		m.IsActive = !m.IsActive
		toggled = m

		actions := []store.Action{store.ToggleModule{ID: id}}
		if st.Tenant != nil {
			t := st.Tenant.Clone()
			t.Modules = []models.ModuleID{}
			for _, mod := range st.Modules {
				active := mod.IsActive
				if mod.ID == id {
					active = m.IsActive
				}
				if active {
					t.Modules = append(t.Modules, mod.ID)
				}
			}
			actions = append(actions, store.SetTenant{Tenant: &t})
		}
		return append(actions, a.activity(actor, models.ActionUpdated, models.EntitySetting, string(id),
			models.Attributes{"module": models.String(string(id)), "active": models.Bool(m.IsActive)})), nil
	})
	if err != nil {
		return models.Module{}, err
	}
	return toggled, a.save(ctx, storage.KeyTenant, storage.KeyActivityLogs)
}

// PatchTheme merges a partial theme.
func (a *App) PatchTheme(patch models.ThemePatch) (models.ThemeSettings, error) {
	if err := a.check(patch); err != nil {
		return models.ThemeSettings{}, err
	}
	a.store.Theme().SetTheme(patch)
	return a.store.Theme().Theme, nil
}

// UIState is the shared view state.
type UIState struct {
	SidebarOpen bool          `json:"sidebarOpen"`
	CurrentView models.View   `json:"currentView"`
	Navigation  []models.View `json:"navigation"`
}

func (a *App) UI() UIState {
	ui := a.store.UI()
	return UIState{
		SidebarOpen: ui.SidebarOpen,
		CurrentView: ui.CurrentView,
		Navigation:  a.store.Modules().Navigation(),
	}
}

// SetView switches the current view.
func (a *App) SetView(req dto.ViewRequest) (UIState, error) {
	if err := a.check(req); err != nil {
		return UIState{}, err
	}
	if !req.View.Valid() {
		return UIState{}, validation.ForField(validation.ReasonUnknownView, "view", "unknown view %q", req.View)
	}
	a.store.UI().SetCurrentView(req.View)
	return a.UI(), nil
}

// ToggleSidebar flips the sidebar.
func (a *App) ToggleSidebar() UIState {
	a.store.UI().ToggleSidebar()
	return a.UI()
}
