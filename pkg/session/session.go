package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is the persisted engagement window for one visitor runtime.
// StartedAt is immutable once set; LastActivityAt moves only on genuine
// user interaction, never on heartbeats or visibility changes.
type Session struct {
	ID             string    `json:"session_id"`
	StartedAt      time.Time `json:"session_start_time"`
	LastActivityAt time.Time `json:"last_activity"`
}

// Expired reports whether the session has been inactive for at least the
// given timeout.
func (s Session) Expired(timeout time.Duration) bool {
	return time.Since(s.LastActivityAt) >= timeout
}

// Idle returns the time elapsed since the last recorded activity, floored
// at zero for clock skew.
func (s Session) Idle() time.Duration {
	idle := time.Since(s.LastActivityAt)
	if idle < 0 {
		return 0
	}
	return idle
}

// newSessionID mints a short random+time-based identifier. UUIDv7 keeps
// identifiers roughly sortable by creation time; the dashes are dropped
// for a compact 32-character token.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
