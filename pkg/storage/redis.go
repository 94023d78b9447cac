package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis client. It is the durable
// scope backend: values are written as {value, expiry} envelopes with a
// matching native TTL, and entries whose envelope expiry has passed are
// evicted on read.
//
// RedisStore does not prefix keys itself; wrap it with Namespaced to keep
// tracking keys apart from other users of the same database.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrUnavailable, err)
	}

	value, expired, err := unwrapValue(raw)
	if err != nil {
		return nil, err
	}
	if expired {
		// Best effort; the native TTL removes it eventually regardless.
		_ = s.client.Del(ctx, key).Err()
		return nil, ErrNotFound
	}
	return value, nil
}

// Set stores value under key with an optional ttl.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}

	raw, err := wrapValue(value, ttl)
	if err != nil {
		return err
	}

	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Remove deletes the entry under key.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}
