package transmit

import (
	"errors"
	"net/url"
	"time"
)

var (
	// ErrMissingEndpoint indicates no ingestion endpoint was configured.
	ErrMissingEndpoint = errors.New("transmit.missing_endpoint")

	// ErrInvalidEndpoint indicates the configured endpoint is not an
	// absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("transmit.invalid_endpoint")
)

// Config holds delivery configuration.
type Config struct {
	// Endpoint is the base URL of the ingestion service; category routes
	// are appended to it.
	Endpoint string `env:"TRACK_ENDPOINT"`

	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration `env:"TRACK_SEND_TIMEOUT" envDefault:"15s"`

	// CloseTimeout bounds how long Close waits for in-flight deliveries.
	CloseTimeout time.Duration `env:"TRACK_CLOSE_TIMEOUT" envDefault:"3s"`

	// SDKVersion tags outbound requests; the tracker fills it in.
	SDKVersion string `env:"-"`
}

// DefaultConfig returns delivery defaults without an endpoint.
func DefaultConfig() Config {
	return Config{
		SendTimeout:  15 * time.Second,
		CloseTimeout: 3 * time.Second,
	}
}

// Validate reports whether the endpoint is usable: absolute, http or
// https, with a host.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return ErrMissingEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return errors.Join(ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidEndpoint
	}
	return nil
}
