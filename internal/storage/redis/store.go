package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hongminglow/dataflow-be/internal/storage"
)

// Ensure Store satisfies the storage.KV interface at compile time.
var _ storage.KV = (*Store)(nil)

// Store keeps each document as a plain Redis string under "<prefix><key>".
type Store struct {
	client *goredis.Client
	prefix string
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewStore connects and pings the server.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &Store{client: client, prefix: opts.Prefix}, nil
}

func (s *Store) name(key storage.Key) string {
	return s.prefix + string(key)
}

func (s *Store) Get(ctx context.Context, key storage.Key) ([]byte, error) {
	data, err := s.client.Get(ctx, s.name(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key storage.Key, value []byte) error {
	return s.client.Set(ctx, s.name(key), value, 0).Err()
}

func (s *Store) SetIfAbsent(ctx context.Context, key storage.Key, value []byte) (bool, error) {
	return s.client.SetNX(ctx, s.name(key), value, 0).Result()
}

func (s *Store) Delete(ctx context.Context, key storage.Key) error {
	return s.client.Del(ctx, s.name(key)).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
