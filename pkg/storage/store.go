package storage

import (
	"context"
	"time"
)

// Store defines the key/value contract shared by both persistence scopes.
//
// Durable implementations honor the ttl passed to Set and lazily evict
// expired entries on read. Session-scoped implementations ignore expiry
// bookkeeping entirely; callers pass ttl 0 for them.
type Store interface {
	// Get retrieves the value stored under key. Missing and expired
	// entries return ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A ttl greater than zero marks the entry
	// for expiry; zero or negative means the entry never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Remove deletes the entry under key. Removing a missing key is not
	// an error.
	Remove(ctx context.Context, key string) error
}
