package visitor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/trackkit/pkg/logger"
	"github.com/dmitrymomot/trackkit/pkg/storage"
)

// Storage keys used by the resolver.
const (
	// IDKey is the durable key holding the visitor id.
	IDKey = "visitor_id"

	// NewVisitorKeyPrefix prefixes the per-session marker caching the
	// "is this visitor new" verdict, so it is computed once per session
	// instead of re-decided on every event.
	NewVisitorKeyPrefix = "isNewVisitor_"
)

// Config holds visitor persistence configuration.
type Config struct {
	// TTL bounds how long a durable visitor id lives. After expiry the
	// visitor lazily appears new again.
	TTL time.Duration `env:"TRACK_VISITOR_TTL" envDefault:"720h"`
}

// DefaultConfig returns the default visitor configuration: ids survive
// roughly 30 days.
func DefaultConfig() Config {
	return Config{
		TTL: 30 * 24 * time.Hour,
	}
}

// Resolver derives visitor ids and keeps the "new visitor" verdict stable
// for the lifetime of a session. Ids persist in the durable store; the
// per-session verdict lives in the session-scoped store.
type Resolver struct {
	durable storage.Store
	scoped  storage.Store
	config  Config
	log     *slog.Logger
}

// Option is a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(r *Resolver) {
		r.config = cfg
	}
}

// WithTTL sets the durable id lifetime. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl > 0 {
			r.config.TTL = ttl
		}
	}
}

// WithLogger sets the logger used for degraded-storage warnings.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a resolver over the durable and session-scoped stores.
// Panics when either store is nil.
func New(durable, scoped storage.Store, opts ...Option) *Resolver {
	if durable == nil || scoped == nil {
		panic("visitor: both stores are required")
	}

	r := &Resolver{
		durable: durable,
		scoped:  scoped,
		config:  DefaultConfig(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the visitor id for the given identity and whether this
// visit is the visitor's first sighting.
//
// An identity hint always wins: the slug is persisted durably so the same
// identity maps to the same id on every page, and identified visitors are
// never "new" (known identity implies a prior relationship). Anonymous
// visitors reuse the stored durable id when one exists; otherwise the id
// is derived from the strongest available signal and stored with the
// configured TTL, and the visit counts as the first sighting. The verdict
// is cached per session so it does not flip mid-session once the durable
// id has been written.
//
// Durable-store failures degrade to "appears new"; they never propagate.
func (r *Resolver) Resolve(ctx context.Context, sessionID string, ident Identity) (string, bool) {
	if ident.Username != "" {
		id := Slugify(ident.Username)
		if err := r.durable.Set(ctx, IDKey, []byte(id), r.config.TTL); err != nil {
			r.log.WarnContext(ctx, "failed to persist visitor id", logger.Error(err), logger.VisitorID(id))
		}
		return id, false
	}

	if verdict, ok := r.cachedVerdict(ctx, sessionID); ok {
		if raw, err := r.durable.Get(ctx, IDKey); err == nil {
			return string(raw), verdict
		}
		// The durable id vanished mid-session; fall through and re-derive,
		// keeping the cached verdict.
		return ident.derive(), verdict
	}

	raw, err := r.durable.Get(ctx, IDKey)
	if err == nil {
		r.cacheVerdict(ctx, sessionID, false)
		return string(raw), false
	}
	if !errors.Is(err, storage.ErrNotFound) {
		r.log.WarnContext(ctx, "visitor id unreadable, treating visitor as new", logger.Error(err))
	}

	id := ident.derive()
	if err := r.durable.Set(ctx, IDKey, []byte(id), r.config.TTL); err != nil {
		r.log.WarnContext(ctx, "failed to persist visitor id", logger.Error(err), logger.VisitorID(id))
	}
	r.cacheVerdict(ctx, sessionID, true)
	return id, true
}

func (r *Resolver) cachedVerdict(ctx context.Context, sessionID string) (verdict, ok bool) {
	if sessionID == "" {
		return false, false
	}
	raw, err := r.scoped.Get(ctx, NewVisitorKeyPrefix+sessionID)
	if err != nil {
		return false, false
	}
	return string(raw) == "true", true
}

func (r *Resolver) cacheVerdict(ctx context.Context, sessionID string, isNew bool) {
	if sessionID == "" {
		return
	}
	value := "false"
	if isNew {
		value = "true"
	}
	if err := r.scoped.Set(ctx, NewVisitorKeyPrefix+sessionID, []byte(value), 0); err != nil {
		r.log.WarnContext(ctx, "failed to cache new-visitor verdict", logger.Error(err), logger.SessionID(sessionID))
	}
}
