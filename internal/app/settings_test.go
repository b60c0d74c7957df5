package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

func ptr[T any](v T) *T { return &v }

func TestToggleModuleSyncsTenant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.app.ToggleModule(ctx, admin, models.ModulePayments)
	require.NoError(t, err)
	assert.True(t, m.IsActive)
	assert.True(t, f.app.Store().Modules().IsActive(models.ModulePayments))

	tenant := stored[models.Tenant](t, f.kv, storage.KeyTenant)
	assert.ElementsMatch(t, []models.ModuleID{
		models.ModulePayments, models.ModuleReminders, models.ModuleAnalytics, models.ModuleExports,
	}, tenant.Modules)

	m, err = f.app.ToggleModule(ctx, admin, models.ModuleReminders)
	require.NoError(t, err)
	assert.False(t, m.IsActive)
	assert.False(t, f.app.Store().Tenant().HasModule(models.ModuleReminders))
	assert.NotContains(t, f.app.UI().Navigation, models.ViewReminders)

	_, err = f.app.ToggleModule(ctx, admin, "teleport")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBrandingMirrorsTheme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tenant, err := f.app.UpdateBranding(ctx, admin, dto.BrandingRequest{
		Name:         ptr("Acme Clinic"),
		PrimaryColor: ptr("#112233"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Clinic", tenant.Name)
	assert.Equal(t, "#8b5cf6", tenant.SecondaryColor)

	s := f.app.Settings()
	assert.Equal(t, "#112233", s.Theme.PrimaryColor)
	assert.Equal(t, "Acme Clinic", s.Tenant.Name)
	assert.Equal(t, "Acme Clinic", stored[models.Tenant](t, f.kv, storage.KeyTenant).Name)

	_, err = f.app.UpdateBranding(ctx, admin, dto.BrandingRequest{AccentColor: ptr("pink")})
	verr := requireReason(t, err, validation.ReasonInvalidValue)
	assert.Equal(t, "accentColor", verr.Field)
}

func TestPatchTheme(t *testing.T) {
	f := newFixture(t)
	theme, err := f.app.PatchTheme(models.ThemePatch{BorderRadius: ptr("lg")})
	require.NoError(t, err)
	assert.Equal(t, "lg", theme.BorderRadius)

	_, err = f.app.PatchTheme(models.ThemePatch{ButtonStyle: ptr("wobbly")})
	requireReason(t, err, validation.ReasonInvalidValue)
}

func TestViewState(t *testing.T) {
	f := newFixture(t)

	ui, err := f.app.SetView(dto.ViewRequest{View: models.ViewPayments})
	require.NoError(t, err)
	assert.Equal(t, models.ViewPayments, ui.CurrentView)

	_, err = f.app.SetView(dto.ViewRequest{View: "basement"})
	requireReason(t, err, validation.ReasonUnknownView)

	ui = f.app.ToggleSidebar()
	assert.False(t, ui.SidebarOpen)
}
