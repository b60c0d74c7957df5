// Package app holds the use cases behind the HTTP API. Each mutating use case
// computes its actions against a snapshot inside store.Update, so a rejected
// request leaves the state untouched, and then writes the touched keys to
// storage.
package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/auth"
	"github.com/hongminglow/dataflow-be/internal/bootstrap"
	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is not active")
)

// Actor identifies who triggered a use case, for activity logging.
type Actor struct {
	UserID string
	IP     string
}

// Options tunes an App.
type Options struct {
	// DemoPassword is the shared secret any active stored user may log in
	// with. Empty disables it.
	DemoPassword string
	Logger       *zap.Logger
	Now          func() time.Time
	// OnPersist is told about every storage write.
	OnPersist func(key storage.Key, err error)
}

// App is the application context: the store, its storage mirror and the
// use cases operating on both.
type App struct {
	store     *store.Store
	kv        storage.KV
	log       *zap.Logger
	now       func() time.Time
	demoHash  string
	onPersist func(storage.Key, error)
	validate  *validator.Validate

	saveMu sync.Mutex
}

// New builds an App over s and kv.
func New(s *store.Store, kv storage.KV, opts Options) (*App, error) {
	a := &App{
		store:     s,
		kv:        kv,
		log:       opts.Logger,
		now:       opts.Now,
		onPersist: opts.OnPersist,
		validate:  newValidator(),
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if opts.DemoPassword != "" {
		hash, err := auth.HashPassword(opts.DemoPassword)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		a.demoHash = hash
	}
	return a, nil
}

// Store exposes the underlying state store.
func (a *App) Store() *store.Store { return a.store }

// Hydrate loads every persisted collection into the store without touching
// the session.
func (a *App) Hydrate(ctx context.Context) error {
	data, err := bootstrap.Load(ctx, a.kv)
	if err != nil {
		return err
	}
	return a.store.Update(func(st store.State) ([]store.Action, error) {
		actions := data.Actions()
		return append(actions, moduleSync(st.Modules, data.Tenant)...), nil
	})
}

// moduleSync returns the toggles that align module flags with the tenant's
// enabled list.
func moduleSync(modules []models.Module, tenant *models.Tenant) []store.Action {
	if tenant == nil {
		return nil
	}
	var out []store.Action
	for _, m := range modules {
		if m.IsActive != tenant.HasModule(m.ID) {
			out = append(out, store.ToggleModule{ID: m.ID})
		}
	}
	return out
}

// save writes the current state of each key. Writes are serialized so the
// last writer always stores the newest snapshot.
func (a *App) save(ctx context.Context, keys ...storage.Key) error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	st := a.store.State()
	var errs []error
	for _, key := range keys {
		err := storage.SaveJSON(ctx, a.kv, key, document(st, key))
		if a.onPersist != nil {
			a.onPersist(key, err)
		}
		if err != nil {
			a.log.Error("persist failed", zap.String("key", string(key)), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func document(st store.State, key storage.Key) any {
	switch key {
	case storage.KeyUsers:
		return st.Users
	case storage.KeyForms:
		return st.Forms
	case storage.KeyTenant:
		return st.Tenant
	case storage.KeyReminders:
		return st.Reminders
	case storage.KeyPayments:
		return st.Payments
	case storage.KeyActivityLogs:
		return st.ActivityLogs
	case storage.KeyNotifications:
		return st.Notifications
	default:
		return nil
	}
}

func (a *App) activity(actor Actor, action string, entity models.EntityType, entityID string, details models.Attributes) store.Action {
	now := a.now()
	return store.AddActivityLog{Log: models.ActivityLog{
		ID:         ids.NewAt("activity", now),
		UserID:     actor.UserID,
		Action:     action,
		EntityType: entity,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  now,
		IPAddress:  actor.IP,
	}}
}

func (a *App) notification(kind models.NotificationType, title, message, link string) store.Action {
	now := a.now()
	return store.AddNotification{Notification: models.Notification{
		ID:        ids.NewAt("notification", now),
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: now,
		Link:      link,
	}}
}

// check runs struct-tag validation and reports the first failure.
func (a *App) check(v any) error {
	err := a.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return validation.New(validation.ReasonInvalidRequest, "%v", err)
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return validation.ForField(validation.ReasonMissingRequired, field, "%s is required", field)
	case "email":
		return validation.ForField(validation.ReasonInvalidEmail, field, "%s must be a valid email address", field)
	case "gt", "gte", "lt", "lte", "min", "max", "len":
		return validation.ForField(validation.ReasonOutOfRange, field, "%s is out of range", field)
	default:
		return validation.ForField(validation.ReasonInvalidValue, field, "%s is invalid", field)
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
