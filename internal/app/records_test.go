package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

func reminderRequest() dto.ReminderRequest {
	at := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	return dto.ReminderRequest{
		Title:       "Lease Renewal",
		Message:     "Your lease is up for renewal.",
		UserID:      "2",
		ScheduledAt: &at,
	}
}

func TestCreateReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.app.CreateReminder(ctx, admin, reminderRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ReminderPending, r.Status)
	assert.Equal(t, models.ChannelEmail, r.Type)
	assert.Equal(t, models.RecurOnce, r.Recurrence)
	assert.Len(t, stored[[]models.Reminder](t, f.kv, storage.KeyReminders), 5)

	req := reminderRequest()
	req.UserID = "99"
	_, err = f.app.CreateReminder(ctx, admin, req)
	verr := requireReason(t, err, validation.ReasonInvalidValue)
	assert.Equal(t, "userId", verr.Field)

	req = reminderRequest()
	req.ScheduledAt = nil
	_, err = f.app.CreateReminder(ctx, admin, req)
	requireReason(t, err, validation.ReasonMissingRequired)

	req = reminderRequest()
	req.Type = "pigeon"
	_, err = f.app.CreateReminder(ctx, admin, req)
	requireReason(t, err, validation.ReasonInvalidValue)
}

func TestUpdateReminderKeepsDeliveryState(t *testing.T) {
	f := newFixture(t)
	req := reminderRequest()
	req.UserID = "3"

	r, err := f.app.UpdateReminder(context.Background(), admin, "2", req)
	require.NoError(t, err)
	assert.Equal(t, "Lease Renewal", r.Title)
	assert.Equal(t, models.ReminderSent, r.Status)
	assert.NotNil(t, r.SentAt)
}

func TestCancelReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.app.CancelReminder(ctx, admin, "1")
	require.NoError(t, err)
	assert.Equal(t, models.ReminderCancelled, r.Status)

	_, err = f.app.CancelReminder(ctx, admin, "1")
	requireReason(t, err, validation.ReasonInvalidValue)

	_, err = f.app.CancelReminder(ctx, admin, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDeleteReminders(t *testing.T) {
	f := newFixture(t)
	got := f.app.ListReminders("dental")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	require.NoError(t, f.app.DeleteReminder(context.Background(), admin, "2"))
	assert.Empty(t, f.app.ListReminders("dental"))
}
