package session

import "time"

// Config holds session lifecycle configuration.
type Config struct {
	// Timeout is the inactivity window after which a session is discarded
	// and a new one is minted on the next qualifying event.
	Timeout time.Duration `env:"TRACK_SESSION_TIMEOUT" envDefault:"30m"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Minute,
	}
}
