package heartbeat

import "time"

// Config holds heartbeat cadence configuration.
type Config struct {
	// Intervals is the backoff ladder, smallest first. The cadence starts
	// at the first rung, advances while the session idles, and resets to
	// the first rung on fresh activity.
	Intervals []time.Duration

	// SoftIdleTimeout pauses the loop without ending it: past this idle
	// time no timer is rescheduled, but activity or a visibility return
	// restarts the cadence.
	SoftIdleTimeout time.Duration `env:"TRACK_HEARTBEAT_SOFT_IDLE" envDefault:"2m"`

	// HardTimeout terminates the loop for good. It matches the session
	// timeout so heartbeats never keep a dead session alive.
	HardTimeout time.Duration `env:"TRACK_HEARTBEAT_HARD_TIMEOUT" envDefault:"30m"`
}

// DefaultConfig returns the default cadence: 15s up to 30m over five
// rungs, soft pause after 2 minutes idle, hard stop after 30.
func DefaultConfig() Config {
	return Config{
		Intervals: []time.Duration{
			15 * time.Second,
			time.Minute,
			5 * time.Minute,
			15 * time.Minute,
			30 * time.Minute,
		},
		SoftIdleTimeout: 2 * time.Minute,
		HardTimeout:     30 * time.Minute,
	}
}
