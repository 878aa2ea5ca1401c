package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces Launchpad keys in a shared redis database.
const DefaultRedisPrefix = "launchpad:"

// RedisStore maps each key to a redis string under a prefix.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) (map[string][]byte, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		result[strings.TrimPrefix(keys[i], s.prefix)] = []byte(str)
	}
	return result, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	keys, err := s.keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (s *RedisStore) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan kv keys: %w", err)
	}
	return keys, nil
}

// Update stages writes in memory while fn runs, reading through to redis
// for keys it has not touched, then applies them in one MULTI/EXEC.
func (s *RedisStore) Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	st := &redisStage{base: s, writes: map[string][]byte{}}
	if err := fn(ctx, st); err != nil {
		return err
	}

	var clearKeys []string
	if st.cleared {
		keys, err := s.keys(ctx)
		if err != nil {
			return err
		}
		clearKeys = keys
	}

	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if len(clearKeys) > 0 {
			p.Del(ctx, clearKeys...)
		}
		for k, v := range st.writes {
			if v == nil {
				p.Del(ctx, s.prefix+k)
				continue
			}
			p.Set(ctx, s.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit kv batch: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// redisStage records pending writes. A nil value marks a deletion.
type redisStage struct {
	base    *RedisStore
	writes  map[string][]byte
	cleared bool
}

func (st *redisStage) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := st.writes[key]; ok {
		if v == nil {
			return nil, nil
		}
		return clone(v), nil
	}
	if st.cleared {
		return nil, nil
	}
	return st.base.Get(ctx, key)
}

func (st *redisStage) Set(_ context.Context, key string, value []byte) error {
	st.writes[key] = clone(value)
	return nil
}

func (st *redisStage) Delete(_ context.Context, key string) error {
	st.writes[key] = nil
	return nil
}

func (st *redisStage) List(ctx context.Context) (map[string][]byte, error) {
	result := map[string][]byte{}
	if !st.cleared {
		base, err := st.base.List(ctx)
		if err != nil {
			return nil, err
		}
		result = base
	}
	for k, v := range st.writes {
		if v == nil {
			delete(result, k)
			continue
		}
		result[k] = clone(v)
	}
	return result, nil
}

func (st *redisStage) Clear(_ context.Context) error {
	st.cleared = true
	clear(st.writes)
	return nil
}
