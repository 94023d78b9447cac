package trackkit

import (
	"errors"
	"time"
)

// ErrMissingSiteID indicates the tracker was configured without a site
// identifier.
var ErrMissingSiteID = errors.New("trackkit.missing_site_id")

// Config holds tracker configuration. All fields load from the
// environment through pkg/config; zero durations fall back to the spec
// defaults at construction.
type Config struct {
	// SiteID identifies the tracked site on the ingestion side.
	SiteID string `env:"TRACK_SITE_ID"`

	// Endpoint is the base URL of the ingestion service.
	Endpoint string `env:"TRACK_ENDPOINT"`

	// Environment gates tracking: anything but production renders the
	// tracker inert.
	Environment string `env:"TRACK_ENV" envDefault:"development"`

	// SessionTimeout closes a session after this much inactivity. It is
	// also the heartbeat hard cutoff.
	SessionTimeout time.Duration `env:"TRACK_SESSION_TIMEOUT" envDefault:"30m"`

	// SoftIdleTimeout pauses the heartbeat loop without ending the session.
	SoftIdleTimeout time.Duration `env:"TRACK_HEARTBEAT_SOFT_IDLE" envDefault:"2m"`

	// ActivityThrottle bounds how often activity bursts reach the engine.
	ActivityThrottle time.Duration `env:"TRACK_ACTIVITY_THROTTLE" envDefault:"250ms"`

	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration `env:"TRACK_SEND_TIMEOUT" envDefault:"15s"`
}

// DefaultConfig returns the spec defaults with no site or endpoint set.
func DefaultConfig() Config {
	return Config{
		Environment:      "development",
		SessionTimeout:   30 * time.Minute,
		SoftIdleTimeout:  2 * time.Minute,
		ActivityThrottle: 250 * time.Millisecond,
		SendTimeout:      15 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SessionTimeout <= 0 {
		c.SessionTimeout = def.SessionTimeout
	}
	if c.SoftIdleTimeout <= 0 {
		c.SoftIdleTimeout = def.SoftIdleTimeout
	}
	if c.ActivityThrottle <= 0 {
		c.ActivityThrottle = def.ActivityThrottle
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = def.SendTimeout
	}
	return c
}
