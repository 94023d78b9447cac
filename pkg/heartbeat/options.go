package heartbeat

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Scheduler.
type Option func(*Scheduler)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *Scheduler) {
		s.config = cfg
	}
}

// WithIntervals replaces the backoff ladder. Empty ladders are ignored;
// intervals are expected smallest first.
func WithIntervals(intervals ...time.Duration) Option {
	return func(s *Scheduler) {
		if len(intervals) > 0 {
			s.config.Intervals = intervals
		}
	}
}

// WithSoftIdleTimeout sets the idle time past which the loop pauses
// without terminating. Non-positive values are ignored.
func WithSoftIdleTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.config.SoftIdleTimeout = d
		}
	}
}

// WithHardTimeout sets the idle time past which the loop terminates for
// good. Non-positive values are ignored.
func WithHardTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.config.HardTimeout = d
		}
	}
}

// WithLogger sets the logger for state-transition debug records.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}
