package forms

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

func TestSaveRejectsBlankName(t *testing.T) {
	d := twoFieldDraft()
	d.Name = "   "
	_, err := Save(d, nil, "1", time.Now())
	requireReason(t, err, validation.ReasonBlankName)
}

func TestSaveRejectsNoFields(t *testing.T) {
	d := NewDraft()
	d.Name = "Empty"
	_, err := Save(d, nil, "1", time.Now())
	requireReason(t, err, validation.ReasonNoFields)
}

func TestSaveRejectsBadFields(t *testing.T) {
	now := time.Now()

	d := twoFieldDraft()
	d.Fields = append(d.Fields, models.FormField{ID: "f1", Type: models.FieldText, Label: "Again"})
	_, err := Save(d, nil, "1", now)
	requireReason(t, err, validation.ReasonDuplicateFieldID)

	d = twoFieldDraft()
	d.Fields[0].Type = models.FieldSelect
	_, err = Save(d, nil, "1", now)
	requireReason(t, err, validation.ReasonMissingOptions)

	d = twoFieldDraft()
	d.Fields[0].Type = "slider"
	_, err = Save(d, nil, "1", now)
	requireReason(t, err, validation.ReasonUnknownFieldType)

	d = twoFieldDraft()
	d.Fields[0].Validation = &models.FieldValidation{Pattern: "("}
	_, err = Save(d, nil, "1", now)
	requireReason(t, err, validation.ReasonInvalidValue)
}

func TestSaveCreate(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d := twoFieldDraft()
	d.IsActive = nil
	d.Fields[0].Options = []string{"stray"}

	form, err := Save(d, nil, "admin-1", now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(form.ID, "form-"))
	assert.Equal(t, now, form.CreatedAt)
	assert.Equal(t, now, form.UpdatedAt)
	assert.Equal(t, "admin-1", form.CreatedBy)
	assert.True(t, form.IsActive)
	assert.Nil(t, form.Fields[0].Options)
}

func TestSaveEditKeepsCreation(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := models.Form{
		ID:        "form-1",
		Name:      "Old",
		Fields:    []models.FormField{{ID: "f1", Type: models.FieldText, Label: "Name"}},
		CreatedAt: created,
		UpdatedAt: created,
		CreatedBy: "owner",
		IsActive:  true,
	}
	d := DraftFrom(existing)
	d.Name = "New name"
	inactive := false
	d.IsActive = &inactive

	now := created.Add(48 * time.Hour)
	form, err := Save(d, &existing, "someone-else", now)
	require.NoError(t, err)
	assert.Equal(t, "form-1", form.ID)
	assert.Equal(t, created, form.CreatedAt)
	assert.Equal(t, now, form.UpdatedAt)
	assert.Equal(t, "owner", form.CreatedBy)
	assert.Equal(t, "New name", form.Name)
	assert.False(t, form.IsActive)
}

func TestOrdered(t *testing.T) {
	fields := []models.FormField{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "b1", Order: 2},
		{ID: "b2", Order: 2},
	}
	got := Ordered(fields)
	var order []string
	for _, f := range got {
		order = append(order, f.ID)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, order)
	assert.Equal(t, "c", fields[0].ID)

	extremes := Ordered([]models.FormField{
		{ID: "max", Order: math.MaxInt},
		{ID: "min", Order: math.MinInt},
		{ID: "zero", Order: 0},
	})
	assert.Equal(t, "min", extremes[0].ID)
	assert.Equal(t, "zero", extremes[1].ID)
	assert.Equal(t, "max", extremes[2].ID)
}
