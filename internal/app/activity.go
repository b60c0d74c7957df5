package app

import (
	"context"
	"fmt"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
)

// ActivityFilter narrows ListActivity.
type ActivityFilter struct {
	Search  string
	Action  string
	Entity  models.EntityType
	Page    int
	PerPage int
}

// ListActivity matches the search against the action, entity type, the
// acting user's name and the details, then paginates newest first.
func (a *App) ListActivity(f ActivityFilter) Page[models.ActivityLog] {
	st := a.store.State()
	q := normalize(f.Search)
	var out []models.ActivityLog
	for _, l := range st.ActivityLogs {
		if q != "" && !activityMatches(st, l, q) {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.EntityType != f.Entity {
			continue
		}
		out = append(out, l)
	}
	return paginate(out, f.Page, f.PerPage)
}

func activityMatches(st store.State, l models.ActivityLog, q string) bool {
	if contains(l.Action, q) || contains(string(l.EntityType), q) {
		return true
	}
	if u, ok := findByID(st.Users, l.UserID); ok && contains(u.Name, q) {
		return true
	}
	for k, v := range l.Details {
		if contains(k, q) || contains(v.Text(), q) {
			return true
		}
	}
	return false
}

// ActivityFacets lists the distinct actions and entity types, in first-seen order.
type ActivityFacets struct {
	Actions  []string            `json:"actions"`
	Entities []models.EntityType `json:"entities"`
}

func (a *App) ActivityFacets() ActivityFacets {
	facets := ActivityFacets{Actions: []string{}, Entities: []models.EntityType{}}
	seenAction := map[string]bool{}
	seenEntity := map[models.EntityType]bool{}
	for _, l := range a.store.Activity().Items {
		if !seenAction[l.Action] {
			seenAction[l.Action] = true
			facets.Actions = append(facets.Actions, l.Action)
		}
		if !seenEntity[l.EntityType] {
			seenEntity[l.EntityType] = true
			facets.Entities = append(facets.Entities, l.EntityType)
		}
	}
	return facets
}

// ListNotifications returns notifications newest first and the unread count.
func (a *App) ListNotifications() ([]models.Notification, int) {
	v := a.store.Notifications()
	return v.Items, v.Unread()
}

// MarkNotificationRead marks one notification read.
func (a *App) MarkNotificationRead(ctx context.Context, id string) error {
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		if _, ok := findByID(st.Notifications, id); !ok {
			return nil, fmt.Errorf("notification %s: %w", id, ErrNotFound)
		}
		return []store.Action{store.MarkNotificationRead{ID: id}}, nil
	})
	if err != nil {
		return err
	}
	return a.save(ctx, storage.KeyNotifications)
}

// MarkAllNotificationsRead marks every notification read.
func (a *App) MarkAllNotificationsRead(ctx context.Context) error {
	a.store.Notifications().MarkAllRead()
	return a.save(ctx, storage.KeyNotifications)
}
