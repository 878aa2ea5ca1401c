package kv

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps everything in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	data mapRepository
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: mapRepository{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Get(ctx, key)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Set(ctx, key, value)
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Delete(ctx, key)
}

func (s *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.List(ctx)
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clear(ctx)
}

// Update runs fn against a copy of the data and swaps it in on success.
func (s *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := maps.Clone(s.data)
	if err := fn(ctx, staged); err != nil {
		return err
	}
	s.data = staged
	return nil
}

func (s *MemoryStore) Close() error { return nil }

type mapRepository map[string][]byte

func (m mapRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (m mapRepository) Set(_ context.Context, key string, value []byte) error {
	m[key] = clone(value)
	return nil
}

func (m mapRepository) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func (m mapRepository) List(_ context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(m))
	for k, v := range m {
		out[k] = clone(v)
	}
	return out, nil
}

func (m mapRepository) Clear(_ context.Context) error {
	clear(m)
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
