// Package session resolves and maintains the visitor engagement window
// against a session-scoped store.
//
// A session is valid while less than the configured timeout (30 minutes by
// default) has passed since the last recorded activity. Resolve returns the
// current session when it is still fresh and mints a new one otherwise;
// resolving a valid session is a pure read, so it is safe to call on every
// tracking trigger. Touch moves the activity clock and is reserved for
// genuine user interaction: heartbeats and visibility changes never call it.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/session"
//
//	manager := session.New(store,
//		session.WithTimeout(30*time.Minute),
//		session.WithLogger(log),
//	)
//
//	s, isNew := manager.Resolve(ctx)
//	if isNew && manager.MarkStarted(ctx, s.ID) {
//		// emit session_start
//	}
//
// # Error Handling
//
// Storage failures never surface to callers. Unreadable state degrades to
// "no session" (a new one is minted) and write failures are logged and
// dropped, so tracking keeps going on a broken store.
package session
