package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// GetJSON retrieves the value stored under key and unmarshals it into v.
func GetJSON[T any](ctx context.Context, s Store, key string, v *T) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Join(ErrInvalidEntry, err)
	}
	return nil
}

// SetJSON marshals v and stores it under key with an optional ttl.
func SetJSON[T any](ctx context.Context, s Store, key string, v T, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrInvalidEntry, err)
	}
	return s.Set(ctx, key, raw, ttl)
}
