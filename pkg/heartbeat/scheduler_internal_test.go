package heartbeat

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The emission gate runs outside the scheduler lock, so a Pause or Close
// landing after the reschedule must still suppress the pending heartbeat.
func TestScheduler_EmitIfLive(t *testing.T) {
	t.Parallel()

	newPending := func(emits *atomic.Int32) *Scheduler {
		s := New(
			func() time.Duration { return 0 },
			func() { emits.Add(1) },
			WithIntervals(time.Hour),
		)
		s.Schedule()
		return s
	}

	t.Run("emits while scheduled", func(t *testing.T) {
		t.Parallel()

		var emits atomic.Int32
		s := newPending(&emits)
		defer s.Close()

		s.emitIfLive()
		assert.Equal(t, int32(1), emits.Load())
	})

	t.Run("pause between reschedule and emission suppresses it", func(t *testing.T) {
		t.Parallel()

		var emits atomic.Int32
		s := newPending(&emits)
		defer s.Close()

		s.Pause()
		s.emitIfLive()
		assert.Equal(t, int32(0), emits.Load())
	})

	t.Run("close between reschedule and emission suppresses it", func(t *testing.T) {
		t.Parallel()

		var emits atomic.Int32
		s := newPending(&emits)

		s.Close()
		s.emitIfLive()
		assert.Equal(t, int32(0), emits.Load())
	})
}
