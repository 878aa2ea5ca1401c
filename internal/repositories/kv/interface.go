package kv

import "context"

// Repository is a flat key/value view over durable storage. Get returns
// (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that can also run a batch of reads and writes as one
// unit. Writes made through the Repository handed to fn become visible only
// if fn returns nil.
type Store interface {
	Repository
	Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
	Close() error
}
