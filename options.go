package trackkit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/trackkit/pkg/storage"
)

// Option is a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithLogger sets the logger shared by the tracker and its collaborators.
// The tracker stays silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithProps sets the inbound client context the tracker enriches events
// with.
func WithProps(props Props) Option {
	return func(t *Tracker) {
		t.props = props
	}
}

// WithDurableStore sets the cross-session backend (visitor ids). Defaults
// to an in-process memory store, which makes every visitor appear new per
// process; production deployments wire a Redis store here.
func WithDurableStore(store storage.Store) Option {
	return func(t *Tracker) {
		if store != nil {
			t.durable = store
		}
	}
}

// WithSessionStore replaces the session-scoped store. Mostly useful for
// tests; the default in-process store already matches the session scope's
// lifetime.
func WithSessionStore(store storage.Store) Option {
	return func(t *Tracker) {
		if store != nil {
			t.scoped = store
		}
	}
}

// WithHTTPClient replaces the transmitter's pooled HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Tracker) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// WithHeartbeatIntervals replaces the heartbeat backoff ladder, smallest
// first. Empty ladders are ignored.
func WithHeartbeatIntervals(intervals ...time.Duration) Option {
	return func(t *Tracker) {
		if len(intervals) > 0 {
			t.hbIntervals = intervals
		}
	}
}
