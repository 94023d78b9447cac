// Package visitor derives stable visitor identifiers and decides whether a
// visit is the visitor's first sighting.
//
// Derivation is deterministic by construction: identical inputs always
// produce identical ids, so the same visitor is recognized across repeat
// visits without a server round-trip. Three signals are supported, in
// priority order:
//
//   - an authenticated identity hint, turned into a slug via Slugify
//   - the client IP, canonicalized via FromIP
//   - a composite device fingerprint via Fingerprint
//
// Resolver ties derivation to persistence: the id lives in the durable
// store under a 30-day TTL, and the "new visitor" verdict is cached in the
// session-scoped store so it stays stable for the whole session.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/visitor"
//
//	resolver := visitor.New(durable, scoped, visitor.WithTTL(30*24*time.Hour))
//
//	id, isNew := resolver.Resolve(ctx, sessionID, visitor.Identity{
//		IP:         props.IP,
//		Components: []string{props.UserAgent, props.Timezone},
//	})
package visitor
