package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/config"
	"github.com/hongminglow/dataflow-be/internal/storage/memory"
	"github.com/hongminglow/dataflow-be/internal/storage/redis"
	"github.com/hongminglow/dataflow-be/internal/storage/sqlite"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, config.StorageConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, kv)

	kv, err = Open(ctx, config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "df.db")})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, kv)
	require.NoError(t, kv.Close())

	mr := miniredis.RunT(t)
	kv, err = Open(ctx, config.StorageConfig{Driver: config.DriverRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &redis.Store{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(ctx, config.StorageConfig{Driver: "etcd"})
	assert.Error(t, err)
}
