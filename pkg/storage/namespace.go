package storage

import (
	"context"
	"strings"
	"time"
)

// Namespaced wraps a store so every key is transparently prefixed. The
// prefix is normalized to end with a single colon; an empty prefix returns
// the store unchanged.
func Namespaced(next Store, prefix string) Store {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return next
	}
	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &namespacedStore{next: next, prefix: prefix}
}

type namespacedStore struct {
	next   Store
	prefix string
}

func (s *namespacedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return s.next.Get(ctx, s.prefix+key)
}

func (s *namespacedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.next.Set(ctx, s.prefix+key, value, ttl)
}

func (s *namespacedStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.next.Remove(ctx, s.prefix+key)
}
