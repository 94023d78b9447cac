package transmit

import (
	"log/slog"
	"net/http"
)

// Option is a functional option for configuring the Transmitter.
type Option func(*Transmitter)

// WithHTTPClient replaces the pooled default client, for custom
// transports or testing. Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Transmitter) {
		if client != nil {
			t.client = client
		}
	}
}

// WithLogger sets the logger failure classifications are written to.
func WithLogger(log *slog.Logger) Option {
	return func(t *Transmitter) {
		if log != nil {
			t.log = log
		}
	}
}
