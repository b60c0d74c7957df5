package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// ListReminders returns reminders whose title or message matches the search.
func (a *App) ListReminders(search string) []models.Reminder {
	q := normalize(search)
	out := []models.Reminder{}
	for _, r := range a.store.Reminders().Items {
		if q == "" || contains(r.Title, q) || contains(r.Message, q) {
			out = append(out, r)
		}
	}
	return out
}

func (a *App) reminderFrom(st store.State, req dto.ReminderRequest) (models.Reminder, error) {
	if _, ok := findByID(st.Users, req.UserID); !ok {
		return models.Reminder{}, validation.ForField(validation.ReasonInvalidValue, "userId", "unknown user %q", req.UserID)
	}
	r := models.Reminder{
		Title:       strings.TrimSpace(req.Title),
		Message:     strings.TrimSpace(req.Message),
		UserID:      req.UserID,
		Type:        req.Type,
		ScheduledAt: *req.ScheduledAt,
		Status:      models.ReminderPending,
		Recurrence:  req.Recurrence,
	}
	if r.Type == "" {
		r.Type = models.ChannelEmail
	}
	if r.Recurrence == "" {
		r.Recurrence = models.RecurOnce
	}
	return r, nil
}

// CreateReminder schedules a pending reminder for a managed user.
func (a *App) CreateReminder(ctx context.Context, actor Actor, req dto.ReminderRequest) (models.Reminder, error) {
	if err := a.check(req); err != nil {
		return models.Reminder{}, err
	}
	var created models.Reminder
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		r, err := a.reminderFrom(st, req)
		if err != nil {
			return nil, err
		}
		r.ID = ids.NewAt("reminder", a.now())
		created = r
		return []store.Action{
			store.AddReminder{Reminder: r},
			a.activity(actor, models.ActionCreated, models.EntityReminder, r.ID, models.Attributes{"title": models.String(r.Title)}),
		}, nil
	})
	if err != nil {
		return models.Reminder{}, err
	}
	return created, a.save(ctx, storage.KeyReminders, storage.KeyActivityLogs)
}

// UpdateReminder replaces a reminder's content and keeps its delivery state.
func (a *App) UpdateReminder(ctx context.Context, actor Actor, id string, req dto.ReminderRequest) (models.Reminder, error) {
	if err := a.check(req); err != nil {
		return models.Reminder{}, err
	}
	var updated models.Reminder
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		current, ok := findByID(st.Reminders, id)
		if !ok {
			return nil, fmt.Errorf("reminder %s: %w", id, ErrNotFound)
		}
		r, err := a.reminderFrom(st, req)
		if err != nil {
			return nil, err
		}
		r.ID = current.ID
		r.Status = current.Status
		r.SentAt = current.SentAt
		updated = r
		return []store.Action{
			store.UpdateReminder{Reminder: r},
			a.activity(actor, models.ActionUpdated, models.EntityReminder, r.ID, models.Attributes{"title": models.String(r.Title)}),
		}, nil
	})
	if err != nil {
		return models.Reminder{}, err
	}
	return updated, a.save(ctx, storage.KeyReminders, storage.KeyActivityLogs)
}

// CancelReminder marks a pending reminder cancelled.
func (a *App) CancelReminder(ctx context.Context, actor Actor, id string) (models.Reminder, error) {
	var updated models.Reminder
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		r, ok := findByID(st.Reminders, id)
		if !ok {
			return nil, fmt.Errorf("reminder %s: %w", id, ErrNotFound)
		}
		if r.Status != models.ReminderPending {
			return nil, validation.ForField(validation.ReasonInvalidValue, "status", "only pending reminders can be cancelled")
		}
		r.Status = models.ReminderCancelled
		updated = r
		return []store.Action{
			store.UpdateReminder{Reminder: r},
			a.activity(actor, models.ActionUpdated, models.EntityReminder, r.ID, models.Attributes{"status": models.String(string(r.Status))}),
		}, nil
	})
	if err != nil {
		return models.Reminder{}, err
	}
	return updated, a.save(ctx, storage.KeyReminders, storage.KeyActivityLogs)
}

// DeleteReminder removes a reminder.
func (a *App) DeleteReminder(ctx context.Context, actor Actor, id string) error {
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		r, ok := findByID(st.Reminders, id)
		if !ok {
			return nil, fmt.Errorf("reminder %s: %w", id, ErrNotFound)
		}
		return []store.Action{
			store.DeleteReminder{ID: id},
			a.activity(actor, models.ActionDeleted, models.EntityReminder, id, models.Attributes{"title": models.String(r.Title)}),
		}, nil
	})
	if err != nil {
		return err
	}
	return a.save(ctx, storage.KeyReminders, storage.KeyActivityLogs)
}
