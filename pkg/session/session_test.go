package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/trackkit/pkg/session"
)

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	timeout := 30 * time.Minute

	t.Run("fresh session is not expired", func(t *testing.T) {
		t.Parallel()

		s := session.Session{LastActivityAt: time.Now()}
		assert.False(t, s.Expired(timeout))
	})

	t.Run("29 minutes idle is still valid", func(t *testing.T) {
		t.Parallel()

		s := session.Session{LastActivityAt: time.Now().Add(-29 * time.Minute)}
		assert.False(t, s.Expired(timeout))
	})

	t.Run("31 minutes idle has expired", func(t *testing.T) {
		t.Parallel()

		s := session.Session{LastActivityAt: time.Now().Add(-31 * time.Minute)}
		assert.True(t, s.Expired(timeout))
	})
}

func TestSession_Idle(t *testing.T) {
	t.Parallel()

	t.Run("reports elapsed time", func(t *testing.T) {
		t.Parallel()

		s := session.Session{LastActivityAt: time.Now().Add(-90 * time.Second)}
		assert.InDelta(t, 90, s.Idle().Seconds(), 5)
	})

	t.Run("future activity floors at zero", func(t *testing.T) {
		t.Parallel()

		s := session.Session{LastActivityAt: time.Now().Add(time.Minute)}
		assert.Zero(t, s.Idle())
	})
}
