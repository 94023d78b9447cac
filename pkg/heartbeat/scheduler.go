package heartbeat

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/trackkit/pkg/logger"
)

// IdleFunc reports how long the session has gone without genuine activity.
type IdleFunc func() time.Duration

// EmitFunc delivers one heartbeat event. It must not block: delivery is
// fire-and-forget and a slow network call must never delay the next tick.
type EmitFunc func()

// Scheduler owns the self-rescheduling heartbeat loop. At most one timer
// is pending at any time; every transition goes through the tagged State
// so the loop cannot end up half-enabled.
//
// The scheduler never touches the session's activity clock. It only reads
// idle time, which keeps heartbeats from extending a session nobody is
// interacting with.
type Scheduler struct {
	mu     sync.Mutex
	config Config
	state  State
	rung   int
	timer  *time.Timer
	idle   IdleFunc
	emit   EmitFunc
	log    *slog.Logger
}

// New creates a scheduler in StateIdle. Nothing fires until Schedule,
// Poke, or Resume starts the loop. Panics when idle or emit is nil, or
// when the configured ladder is empty.
func New(idle IdleFunc, emit EmitFunc, opts ...Option) *Scheduler {
	if idle == nil || emit == nil {
		panic("heartbeat: idle and emit callbacks are required")
	}

	s := &Scheduler{
		config: DefaultConfig(),
		idle:   idle,
		emit:   emit,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.config.Intervals) == 0 {
		panic("heartbeat: at least one interval is required")
	}
	return s
}

// Schedule arms the loop at the current rung. A no-op unless the scheduler
// is in StateIdle: a pending timer is never duplicated, a paused scheduler
// waits for Resume, and a terminated one stays down.
func (s *Scheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduleLocked()
}

func (s *Scheduler) scheduleLocked() {
	if s.state != StateIdle {
		return
	}
	s.state = StateScheduled
	s.timer = time.AfterFunc(s.config.Intervals[s.rung], s.tick)
}

// tick runs one heartbeat cycle: terminate past the hard cutoff, pause
// past the soft idle limit, otherwise emit, advance the ladder when the
// idle time has outgrown the current rung, and reschedule.
func (s *Scheduler) tick() {
	s.mu.Lock()
	if s.state != StateScheduled {
		// A stale timer that lost the race with Pause or Close.
		s.mu.Unlock()
		return
	}

	idle := s.idle()

	if idle >= s.config.HardTimeout {
		s.state = StateTerminated
		s.timer = nil
		s.log.Debug("heartbeat loop terminated on hard timeout", logger.Duration(idle))
		s.mu.Unlock()
		return
	}

	if idle > s.config.SoftIdleTimeout {
		// Stop the clock but stay enabled; activity restarts the loop.
		s.state = StateIdle
		s.timer = nil
		s.log.Debug("heartbeat loop paused on soft idle", logger.Duration(idle))
		s.mu.Unlock()
		return
	}

	if idle > s.config.Intervals[s.rung] && s.rung+1 < len(s.config.Intervals) {
		s.rung++
	}
	s.timer.Reset(s.config.Intervals[s.rung])
	s.mu.Unlock()

	s.emitIfLive()
}

// emitIfLive re-checks the state right before emitting. Pause or Close can
// land between the reschedule and the emission; a heartbeat for a tab
// already reported hidden must not go out. The emit callback runs outside
// the lock because it takes locks of its own.
func (s *Scheduler) emitIfLive() {
	s.mu.Lock()
	live := s.state == StateScheduled
	s.mu.Unlock()

	if live {
		s.emit()
	}
}

// Poke records fresh activity: the ladder resets to its minimum and the
// loop (re)starts. With a timer already pending, the pending tick is
// pulled in to the minimum interval instead of arming a second timer.
// Paused and terminated schedulers ignore activity.
func (s *Scheduler) Poke() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rung = 0
	switch s.state {
	case StateIdle:
		s.scheduleLocked()
	case StateScheduled:
		s.timer.Reset(s.config.Intervals[0])
	}
}

// Pause reacts to the tab going hidden: the pending timer is cancelled
// immediately rather than allowed to fire in the background. A terminated
// scheduler stays terminated.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = StatePaused
}

// Resume reacts to the tab becoming visible again: the ladder resets and
// the loop restarts. Only a paused scheduler resumes; in particular a
// hard-terminated loop never comes back.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return
	}
	s.state = StateIdle
	s.rung = 0
	s.scheduleLocked()
}

// Close terminates the loop for good and releases the pending timer.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = StateTerminated
}

// State reports the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Interval reports the cadence rung the next tick is (or would be)
// scheduled with.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Intervals[s.rung]
}
