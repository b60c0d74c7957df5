// Package storagetest holds the behaviour every storage.KV backend must show.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/storage"
)

// Run exercises kv against the storage.KV contract. kv must start empty.
func Run(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := kv.Get(ctx, storage.KeyUsers)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, storage.KeyForms, []byte(`[{"id":"1"}]`)))
		got, err := kv.Get(ctx, storage.KeyForms)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(got))

		require.NoError(t, kv.Set(ctx, storage.KeyForms, []byte(`[]`)))
		got, err = kv.Get(ctx, storage.KeyForms)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(got))
	})

	t.Run("set if absent keeps existing", func(t *testing.T) {
		wrote, err := kv.SetIfAbsent(ctx, storage.KeyTenant, []byte(`{"name":"first"}`))
		require.NoError(t, err)
		assert.True(t, wrote)

		wrote, err = kv.SetIfAbsent(ctx, storage.KeyTenant, []byte(`{"name":"second"}`))
		require.NoError(t, err)
		assert.False(t, wrote)

		got, err := kv.Get(ctx, storage.KeyTenant)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"first"}`, string(got))
	})

	t.Run("typed helpers", func(t *testing.T) {
		type doc struct {
			ID string `json:"id"`
		}
		require.NoError(t, storage.SaveJSON(ctx, kv, storage.KeyPayments, []doc{{ID: "p1"}}))
		var out []doc
		found, err := storage.LoadJSON(ctx, kv, storage.KeyPayments, &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []doc{{ID: "p1"}}, out)

		found, err = storage.LoadJSON(ctx, kv, storage.KeyReminders, &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, storage.KeyNotifications, []byte(`[]`)))
		require.NoError(t, kv.Delete(ctx, storage.KeyNotifications))
		_, err := kv.Get(ctx, storage.KeyNotifications)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NoError(t, kv.Delete(ctx, storage.KeyNotifications))
	})
}
