package app

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/bootstrap"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/storage/memory"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	app      *App
	kv       *memory.Store
	persists map[storage.Key]int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	kv := memory.New()
	_, err := bootstrap.Seed(ctx, kv)
	require.NoError(t, err)

	f := &fixture{kv: kv, persists: map[storage.Key]int{}}
	a, err := New(store.New(), kv, Options{
		DemoPassword: "password",
		Now:          func() time.Time { return fixedNow },
		OnPersist:    func(key storage.Key, _ error) { f.persists[key]++ },
	})
	require.NoError(t, err)
	require.NoError(t, a.Hydrate(ctx))
	f.app = a
	return f
}

func requireReason(t *testing.T, err error, want validation.Reason) *validation.Error {
	t.Helper()
	require.Error(t, err)
	verr, ok := validation.As(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, want, verr.Reason)
	return verr
}

func stored[T any](t *testing.T, kv storage.KV, key storage.Key) T {
	t.Helper()
	var out T
	ok, err := storage.LoadJSON(context.Background(), kv, key, &out)
	require.NoError(t, err)
	require.True(t, ok)
	return out
}

var admin = Actor{UserID: "1", IP: "127.0.0.1"}

func TestHydrateSyncsModulesWithTenant(t *testing.T) {
	f := newFixture(t)
	mods := f.app.Store().Modules()
	assert.True(t, mods.IsActive(models.ModuleReminders))
	assert.True(t, mods.IsActive(models.ModuleAnalytics))
	assert.False(t, mods.IsActive(models.ModulePayments))
	assert.Len(t, f.app.Store().Users().Items, 5)
	assert.False(t, f.app.Store().Auth().IsAuthenticated)
}

type failingKV struct{ storage.KV }

func (failingKV) Set(context.Context, storage.Key, []byte) error { return errors.New("disk full") }

func TestSaveReportsStorageFailure(t *testing.T) {
	f := newFixture(t)
	f.app.kv = failingKV{f.kv}

	_, err := f.app.ToggleUserStatus(context.Background(), admin, "2")
	assert.ErrorContains(t, err, "disk full")
	u, ok := f.app.Store().Users().Find("2")
	require.True(t, ok)
	assert.Equal(t, models.StatusInactive, u.Status)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	p := paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, p.Items)
	assert.Equal(t, 3, p.TotalPages)

	p = paginate(items, 9, 2)
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)

	p = paginate(items, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Len(t, p.Items, 5)

	p = paginate([]int{1, 2, 3}, math.MaxInt64/5, 10)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.TotalPages)

	p = paginate(items, 1, math.MaxInt)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
	assert.Len(t, p.Items, 5)

	p = paginate(items, math.MaxInt, math.MaxInt)
	assert.Empty(t, p.Items)
}
