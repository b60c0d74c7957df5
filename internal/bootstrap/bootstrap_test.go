package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/storage/memory"
	"github.com/hongminglow/dataflow-be/internal/store"
)

func TestSeedWritesEveryKey(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	written, err := Seed(ctx, kv)
	require.NoError(t, err)
	assert.ElementsMatch(t, storage.AllKeys, written)

	again, err := Seed(ctx, kv)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestSeedKeepsExistingData(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, storage.KeyUsers, []byte(`[]`)))

	written, err := Seed(ctx, kv)
	require.NoError(t, err)
	assert.NotContains(t, written, storage.KeyUsers)

	raw, err := kv.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))

	raw, err = kv.Get(ctx, storage.KeyForms)
	require.NoError(t, err)
	seed, err := SeedDocument(storage.KeyForms)
	require.NoError(t, err)
	assert.Equal(t, seed, raw)
}

func TestLoadSeededData(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	_, err := Seed(ctx, kv)
	require.NoError(t, err)

	d, err := Load(ctx, kv)
	require.NoError(t, err)
	assert.Len(t, d.Users, 5)
	assert.Len(t, d.Forms, 4)
	assert.Len(t, d.Reminders, 4)
	assert.Len(t, d.Payments, 4)
	assert.Len(t, d.ActivityLogs, 5)
	assert.Len(t, d.Notifications, 5)
	require.NotNil(t, d.Tenant)
	assert.Equal(t, 50, d.Tenant.MaxUsers)
	assert.True(t, d.Tenant.HasModule(models.ModuleReminders))

	admin := d.Users[0]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, models.String("Management"), admin.CustomData["department"])

	student := d.Forms[0]
	f9, ok := student.Field("f9")
	require.True(t, ok)
	require.NotNil(t, f9.DefaultValue)
	assert.Equal(t, models.Bool(true), *f9.DefaultValue)

	for _, form := range d.Forms {
		for _, field := range form.Fields {
			assert.True(t, field.Type.Valid(), "%s/%s", form.ID, field.ID)
		}
	}
}

func TestLoadEmptyStorage(t *testing.T) {
	d, err := Load(context.Background(), memory.New())
	require.NoError(t, err)
	assert.Nil(t, d.Tenant)
	assert.Empty(t, d.Users)
}

func TestLoadCorruptDocument(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, storage.KeyForms, []byte(`{not json`)))

	_, err := Load(ctx, kv)
	assert.ErrorContains(t, err, string(storage.KeyForms))
}

func TestActionsInstallData(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	_, err := Seed(ctx, kv)
	require.NoError(t, err)
	d, err := Load(ctx, kv)
	require.NoError(t, err)

	s := store.New()
	s.Dispatch(d.Actions()...)

	st := s.State()
	assert.Len(t, st.Users, 5)
	assert.Len(t, st.Forms, 4)
	require.NotNil(t, st.Tenant)
	assert.Equal(t, "demo", st.Tenant.Slug)
	assert.False(t, st.IsAuthenticated)
}
