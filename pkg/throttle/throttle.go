package throttle

import (
	"sync"
	"time"
)

// Throttle rate-limits calls to a function with leading plus trailing
// semantics: the first call in a window runs immediately, calls landing
// inside the window coalesce into a single run at the window's end. A
// burst therefore produces exactly one leading and one trailing execution,
// so activity right before going idle is never lost.
//
// The zero value is not usable; use New.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	pending  bool
	closed   bool
}

// New creates a throttle around fn with the given window. Panics when fn
// is nil or the interval is not positive.
func New(interval time.Duration, fn func()) *Throttle {
	if fn == nil {
		panic("throttle: fn is required")
	}
	if interval <= 0 {
		panic("throttle: interval must be positive")
	}
	return &Throttle{interval: interval, fn: fn}
}

// Call requests an execution. Outside a window it runs fn immediately and
// opens one; inside a window it marks a trailing run and returns. fn runs
// on the caller's goroutine for leading executions and on the timer
// goroutine for trailing ones, never under the throttle's lock.
func (t *Throttle) Call() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.pending = true
		t.mu.Unlock()
		return
	}
	t.timer = time.AfterFunc(t.interval, t.fire)
	t.mu.Unlock()

	t.fn()
}

// fire closes the current window, running the trailing call when one was
// requested. A trailing run opens a fresh window so back-to-back bursts
// keep their spacing.
func (t *Throttle) fire() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	if !t.pending {
		t.timer = nil
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.timer.Reset(t.interval)
	t.mu.Unlock()

	t.fn()
}

// Close releases the window timer and drops any pending trailing run.
// Later Call invocations are no-ops.
func (t *Throttle) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.pending = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
