package memory

import (
	"context"
	"sync"

	"github.com/hongminglow/dataflow-be/internal/storage"
)

// Ensure Store satisfies the storage.KV interface at compile time.
var _ storage.KV = (*Store)(nil)

// Store keeps documents in process memory. Used by tests and by STORAGE_DRIVER=memory.
type Store struct {
	mu   sync.RWMutex
	docs map[storage.Key][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{docs: make(map[storage.Key][]byte)}
}

func (s *Store) Get(_ context.Context, key storage.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), doc...), nil
}

func (s *Store) Set(_ context.Context, key storage.Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) SetIfAbsent(_ context.Context, key storage.Key, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[key]; ok {
		return false, nil
	}
	s.docs[key] = append([]byte(nil), value...)
	return true, nil
}

func (s *Store) Delete(_ context.Context, key storage.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

func (s *Store) Close() error { return nil }
