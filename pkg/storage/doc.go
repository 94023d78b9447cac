// Package storage provides the key/value persistence layer for visitor and
// session state, split across two scopes with different lifetimes.
//
// The durable scope survives across sessions and processes: entries carry
// an expiry and are lazily evicted on read. The session scope lives exactly
// as long as the runtime and does no expiry bookkeeping. Both scopes speak
// the same Store interface, so engine code never cares which one it holds.
//
// # Implementations
//
//   - MemoryStore – in-process map; the session-scoped store and the
//     durable fallback when no external backend is configured.
//   - RedisStore – durable backend over github.com/redis/go-redis/v9;
//     values are written as {value, expiry} envelopes with a matching
//     native TTL.
//
// Namespaced wraps any Store so all keys share a fixed prefix, keeping
// tracking state apart from other users of the same database.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/storage"
//
//	client, err := storage.Connect(ctx, storage.RedisConfig{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//		ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//		// handle error
//	}
//	durable := storage.Namespaced(storage.NewRedisStore(client), "trackkit")
//
//	err = storage.SetJSON(ctx, durable, "visitor_id", id, 30*24*time.Hour)
//
// # Error Handling
//
// Get returns ErrNotFound for missing and expired entries so callers can
// treat both identically as a cache miss. Backend failures surface as
// ErrUnavailable-wrapped errors; engine code logs them and degrades rather
// than propagating.
package storage
