// Package backend opens the storage.KV implementation named by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/hongminglow/dataflow-be/internal/config"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/storage/memory"
	"github.com/hongminglow/dataflow-be/internal/storage/postgres"
	"github.com/hongminglow/dataflow-be/internal/storage/redis"
	"github.com/hongminglow/dataflow-be/internal/storage/sqlite"
)

// Open connects to the configured driver.
func Open(ctx context.Context, cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverPostgres:
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	case config.DriverRedis:
		return redis.NewStore(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case config.DriverSQLite, "":
		return sqlite.NewStore(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
