package transmit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/trackkit/pkg/logger"
)

// Category selects the ingest route an event is delivered to.
type Category string

const (
	// CategoryEvent carries human events: pageview, session_start, heartbeat.
	CategoryEvent Category = "event"

	// CategoryVitals carries Web Vitals performance metrics.
	CategoryVitals Category = "vitals"

	// CategoryBot carries bot-detection reports.
	CategoryBot Category = "bot"
)

// categoryPaths maps categories onto the ingest route family.
var categoryPaths = map[Category]string{
	CategoryEvent:  "/api/track",
	CategoryVitals: "/api/vitals",
	CategoryBot:    "/api/bot",
}

// Failure classifications, attached to delivery failure logs so operators
// can tell a slow endpoint from a broken one.
const (
	ClassTimeout = "timeout"
	ClassNetwork = "network"
	ClassStatus  = "status"
	ClassConfig  = "config"
)

// Transmitter delivers event payloads to the ingestion endpoint.
// Delivery is best-effort and time-bounded: one attempt, no retries,
// and no error ever reaches the caller. Failures are classified and
// logged for diagnosis only.
type Transmitter struct {
	client *http.Client
	config Config
	base   *url.URL // nil when the endpoint failed validation
	log    *slog.Logger

	// configLogged makes the misconfiguration warning fire exactly once
	// per instance; constructing a fresh Transmitter resets it, which is
	// how tests exercise the behavior.
	configLogged atomic.Bool

	closed   atomic.Bool
	inflight sync.WaitGroup
}

// New creates a transmitter for the configured endpoint. An invalid
// endpoint does not fail construction: the transmitter comes up disabled,
// every Send no-ops, and the misconfiguration is logged once on first use.
func New(cfg Config, opts ...Option) *Transmitter {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultConfig().SendTimeout
	}
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = DefaultConfig().CloseTimeout
	}

	t := &Transmitter{
		config: cfg,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.client == nil {
		t.client = &http.Client{
			Timeout: cfg.SendTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	if cfg.Validate() == nil {
		t.base, _ = url.Parse(strings.TrimRight(cfg.Endpoint, "/"))
	}
	return t
}

// Send delivers one payload to the category's ingest route. It blocks for
// at most the configured send timeout and never returns an error; run it
// on its own goroutine when the caller must not wait. Calls after Close
// are dropped.
func (t *Transmitter) Send(ctx context.Context, category Category, payload any) {
	// Register with the in-flight group before the closed check, so a send
	// racing Close either sees closed and backs out, or is covered by
	// Close's wait.
	t.inflight.Add(1)
	defer t.inflight.Done()

	if t.closed.Load() {
		return
	}
	if t.base == nil {
		if t.configLogged.CompareAndSwap(false, true) {
			t.log.WarnContext(ctx, "event delivery disabled",
				logger.Classification(ClassConfig),
				slog.String("endpoint", t.config.Endpoint),
			)
		}
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		t.log.WarnContext(ctx, "event payload not serializable",
			logger.Classification(ClassConfig),
			logger.Category(string(category)),
			logger.Error(err),
		)
		return
	}

	path, ok := categoryPaths[category]
	if !ok {
		path = categoryPaths[CategoryEvent]
	}

	ctx, cancel := context.WithTimeout(ctx, t.config.SendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.base.String()+path, bytes.NewReader(body))
	if err != nil {
		t.log.WarnContext(ctx, "failed to build delivery request",
			logger.Classification(ClassConfig),
			logger.Category(string(category)),
			logger.Error(err),
		)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "trackkit/"+t.config.SDKVersion)

	resp, err := t.client.Do(req)
	if err != nil {
		class := ClassNetwork
		if errors.Is(err, context.DeadlineExceeded) {
			class = ClassTimeout
		}
		t.log.WarnContext(ctx, "event delivery failed",
			logger.Classification(class),
			logger.Category(string(category)),
			logger.Error(err),
		)
		return
	}
	defer resp.Body.Close()

	// Drain so the connection returns to the pool.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.WarnContext(ctx, "event delivery rejected",
			logger.Classification(ClassStatus),
			logger.Category(string(category)),
			slog.Int("status", resp.StatusCode),
		)
	}
}

// Close stops accepting new sends and waits up to the configured close
// timeout for in-flight deliveries, the unload-safety analogue of the
// browser's beacon flush.
func (t *Transmitter) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})
	go func() {
		t.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(t.config.CloseTimeout):
		t.log.Warn("closed with deliveries still in flight")
	}
}
