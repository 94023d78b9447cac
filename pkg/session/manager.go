package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/trackkit/pkg/logger"
	"github.com/dmitrymomot/trackkit/pkg/storage"
)

// Storage keys used by the manager. They live in the session-scoped store,
// so no expiry bookkeeping applies.
const (
	// DataKey is the logical key holding the serialized session state.
	DataKey = "session_data"

	// StartKeyPrefix prefixes the per-session marker that guards against
	// emitting session_start twice for the same session.
	StartKeyPrefix = "session_start_"
)

// Manager resolves and maintains the current session against a
// session-scoped store. Every method swallows storage failures after
// logging them: session handling degrades, it never propagates errors
// into the tracking path.
type Manager struct {
	store  storage.Store
	config Config
	log    *slog.Logger
}

// New creates a session manager over the given session-scoped store.
// Panics when store is nil; the engine cannot run without one.
func New(store storage.Store, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}

	m := &Manager{
		store:  store,
		config: DefaultConfig(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resolve returns the current session, minting a new one when none exists
// or the stored one has been inactive past the timeout. The second return
// reports whether the session was freshly minted by this call.
//
// Resolving a still-valid session is a pure read: repeated calls return it
// unchanged and touch nothing.
func (m *Manager) Resolve(ctx context.Context) (Session, bool) {
	var s Session
	err := storage.GetJSON(ctx, m.store, DataKey, &s)
	if err == nil && s.ID != "" && !s.Expired(m.config.Timeout) {
		return s, false
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.log.WarnContext(ctx, "session state unreadable, starting a new session", logger.Error(err))
	}

	now := time.Now().UTC()
	s = Session{ID: newSessionID(), StartedAt: now, LastActivityAt: now}
	if err := storage.SetJSON(ctx, m.store, DataKey, s, 0); err != nil {
		m.log.WarnContext(ctx, "failed to persist session state", logger.Error(err), logger.SessionID(s.ID))
	}
	return s, true
}

// Touch persists a fresh last-activity timestamp for the current session.
// An expired or missing session is left alone; renewal is Resolve's job.
func (m *Manager) Touch(ctx context.Context) {
	var s Session
	if err := storage.GetJSON(ctx, m.store, DataKey, &s); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WarnContext(ctx, "session state unreadable on activity", logger.Error(err))
		}
		return
	}
	if s.ID == "" || s.Expired(m.config.Timeout) {
		return
	}

	s.LastActivityAt = time.Now().UTC()
	if err := storage.SetJSON(ctx, m.store, DataKey, s, 0); err != nil {
		m.log.WarnContext(ctx, "failed to persist session activity", logger.Error(err), logger.SessionID(s.ID))
	}
}

// IdleFor reports how long the current session has gone without activity.
// Returns zero when no session state is readable.
func (m *Manager) IdleFor(ctx context.Context) time.Duration {
	var s Session
	if err := storage.GetJSON(ctx, m.store, DataKey, &s); err != nil || s.ID == "" {
		return 0
	}
	return s.Idle()
}

// MarkStarted records that session_start has been emitted for the given
// session id. It returns true exactly once per id; later calls find the
// marker and return false.
func (m *Manager) MarkStarted(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return false
	}

	key := StartKeyPrefix + sessionID
	_, err := m.store.Get(ctx, key)
	if err == nil {
		return false
	}
	if !errors.Is(err, storage.ErrNotFound) {
		m.log.WarnContext(ctx, "session start marker unreadable", logger.Error(err), logger.SessionID(sessionID))
	}

	if err := m.store.Set(ctx, key, []byte("1"), 0); err != nil {
		m.log.WarnContext(ctx, "failed to persist session start marker", logger.Error(err), logger.SessionID(sessionID))
	}
	return true
}

// Timeout exposes the configured inactivity window.
func (m *Manager) Timeout() time.Duration {
	return m.config.Timeout
}
