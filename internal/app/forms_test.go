package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/forms"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

func TestListForms(t *testing.T) {
	f := newFixture(t)
	assert.Len(t, f.app.ListForms(FormFilter{}), 4)

	got := f.app.ListForms(FormFilter{Search: "patient"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = f.app.ListForms(FormFilter{Category: "HR"})
	require.Len(t, got, 1)
	assert.Equal(t, "Employee Onboarding", got[0].Name)
}

func TestFormControls(t *testing.T) {
	f := newFixture(t)
	controls, err := f.app.FormControls("4")
	require.NoError(t, err)
	require.Len(t, controls, 7)

	rating := controls[2]
	assert.Equal(t, "c3", rating.FieldID)
	assert.Equal(t, forms.ShapeRating, rating.Shape)
	require.NotNil(t, rating.Max)
	assert.Equal(t, float64(forms.RatingMax), *rating.Max)

	assert.Equal(t, forms.ShapeDropdown, controls[3].Shape)
	assert.Equal(t, []string{"Product A", "Product B", "Product C", "Service A", "Service B"}, controls[3].Options)

	_, err = f.app.FormControls("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckSubmission(t *testing.T) {
	f := newFixture(t)
	values := map[string]any{
		"c1": "Ann",
		"c2": "ann@example.com",
		"c3": 6,
		"c4": "Product B",
		"c5": "Great",
	}
	_, err := f.app.CheckSubmission("4", values)
	requireReason(t, err, validation.ReasonOutOfRange)

	values["c3"] = 4
	got, err := f.app.CheckSubmission("4", values)
	require.NoError(t, err)
	assert.Len(t, got, 7)
	assert.Len(t, f.app.Store().Users().Items, 5)
}

func TestSaveFormCreateAndEdit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d := forms.NewDraft()
	d.Name = "Visitor Log"
	d, err := forms.AddField(d, models.FieldText)
	require.NoError(t, err)

	created, err := f.app.SaveForm(ctx, admin, d)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "1", created.CreatedBy)
	assert.True(t, created.IsActive)
	assert.Len(t, f.app.Store().Forms().Items, 5)
	assert.Len(t, stored[[]models.Form](t, f.kv, storage.KeyForms), 5)

	edit := forms.DraftFrom(created)
	edit.Name = "Visitor Book"
	edit, err = forms.AddField(edit, models.FieldEmail)
	require.NoError(t, err)
	updated, err := f.app.SaveForm(ctx, admin, edit)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Visitor Book", updated.Name)
	assert.Len(t, updated.Fields, 2)
	assert.Len(t, f.app.Store().Forms().Items, 5)
	assert.Equal(t, models.ActionUpdated, f.app.Store().Activity().Items[0].Action)
}

func TestSaveFormRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d := forms.NewDraft()
	d.Name = "   "
	d, err := forms.AddField(d, models.FieldText)
	require.NoError(t, err)
	_, err = f.app.SaveForm(ctx, admin, d)
	requireReason(t, err, validation.ReasonBlankName)

	empty := forms.NewDraft()
	empty.Name = "Empty"
	_, err = f.app.SaveForm(ctx, admin, empty)
	requireReason(t, err, validation.ReasonNoFields)

	tenant := f.app.Store().Tenant().Clone()
	tenant.MaxForms = 4
	f.app.Store().Dispatch(store.SetTenant{Tenant: &tenant})
	d.Name = "One Too Many"
	_, err = f.app.SaveForm(ctx, admin, d)
	requireReason(t, err, validation.ReasonQuotaExceeded)

	assert.Len(t, f.app.Store().Forms().Items, 4)
}

func TestDeleteForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.app.DeleteForm(ctx, admin, "3"))
	assert.Len(t, f.app.ListForms(FormFilter{}), 3)
	assert.ErrorIs(t, f.app.DeleteForm(ctx, admin, "3"), ErrNotFound)
}
