// Package bootstrap seeds storage with the built-in demo dataset and loads
// persisted collections back into the store.
package bootstrap

import (
	"context"
	"embed"
	"fmt"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
)

//go:embed seed/*.json
var seedFS embed.FS

var seedFiles = map[storage.Key]string{
	storage.KeyUsers:         "seed/users.json",
	storage.KeyForms:         "seed/forms.json",
	storage.KeyTenant:        "seed/tenant.json",
	storage.KeyReminders:     "seed/reminders.json",
	storage.KeyPayments:      "seed/payments.json",
	storage.KeyActivityLogs:  "seed/activity_logs.json",
	storage.KeyNotifications: "seed/notifications.json",
}

// SeedDocument returns the raw built-in document for key.
func SeedDocument(key storage.Key) ([]byte, error) {
	name, ok := seedFiles[key]
	if !ok {
		return nil, fmt.Errorf("no seed document for %s", key)
	}
	return seedFS.ReadFile(name)
}

// Seed writes the built-in document under every key that is still empty and
// returns the keys it wrote. Keys that already hold data are never touched.
func Seed(ctx context.Context, kv storage.KV) ([]storage.Key, error) {
	var written []storage.Key
	for _, key := range storage.AllKeys {
		doc, err := SeedDocument(key)
		if err != nil {
			return written, err
		}
		ok, err := kv.SetIfAbsent(ctx, key, doc)
		if err != nil {
			return written, fmt.Errorf("seed %s: %w", key, err)
		}
		if ok {
			written = append(written, key)
		}
	}
	return written, nil
}

// Data is every persisted collection.
type Data struct {
	Users         []models.User
	Forms         []models.Form
	Tenant        *models.Tenant
	Reminders     []models.Reminder
	Payments      []models.Payment
	ActivityLogs  []models.ActivityLog
	Notifications []models.Notification
}

// Load reads every collection. Missing keys load as empty.
func Load(ctx context.Context, kv storage.KV) (Data, error) {
	var d Data
	targets := []struct {
		key storage.Key
		dst any
	}{
		{storage.KeyUsers, &d.Users},
		{storage.KeyForms, &d.Forms},
		{storage.KeyTenant, &d.Tenant},
		{storage.KeyReminders, &d.Reminders},
		{storage.KeyPayments, &d.Payments},
		{storage.KeyActivityLogs, &d.ActivityLogs},
		{storage.KeyNotifications, &d.Notifications},
	}
	for _, t := range targets {
		if _, err := storage.LoadJSON(ctx, kv, t.key, t.dst); err != nil {
			return Data{}, err
		}
	}
	return d, nil
}

// FromState collects the persisted collections held by a state.
func FromState(st store.State) Data {
	return Data{
		Users:         st.Users,
		Forms:         st.Forms,
		Tenant:        st.Tenant,
		Reminders:     st.Reminders,
		Payments:      st.Payments,
		ActivityLogs:  st.ActivityLogs,
		Notifications: st.Notifications,
	}
}

// Actions returns the batch that installs d into a store.
func (d Data) Actions() []store.Action {
	return []store.Action{
		store.SetTenant{Tenant: d.Tenant},
		store.SetUsers{Users: d.Users},
		store.SetForms{Forms: d.Forms},
		store.SetReminders{Reminders: d.Reminders},
		store.SetPayments{Payments: d.Payments},
		store.SetActivityLogs{Logs: d.ActivityLogs},
		store.SetNotifications{Notifications: d.Notifications},
	}
}
