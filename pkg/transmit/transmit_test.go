package transmit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trackkit/pkg/transmit"
)

// logBuffer captures log output for classification assertions.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger(buf *logBuffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestTransmitter_Send(t *testing.T) {
	t.Parallel()

	t.Run("posts JSON to the category route", func(t *testing.T) {
		t.Parallel()

		type received struct {
			path        string
			contentType string
			body        map[string]any
		}
		got := make(chan received, 1)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			var body map[string]any
			_ = json.Unmarshal(raw, &body)
			got <- received{path: r.URL.Path, contentType: r.Header.Get("Content-Type"), body: body}
		}))
		defer srv.Close()

		tx := transmit.New(transmit.Config{Endpoint: srv.URL})
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{"event_type": "pageview"})

		select {
		case r := <-got:
			assert.Equal(t, "/api/track", r.path)
			assert.Equal(t, "application/json", r.contentType)
			assert.Equal(t, "pageview", r.body["event_type"])
		case <-time.After(time.Second):
			t.Fatal("no request received")
		}
	})

	t.Run("category routes", func(t *testing.T) {
		t.Parallel()

		paths := make(chan string, 2)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths <- r.URL.Path
		}))
		defer srv.Close()

		tx := transmit.New(transmit.Config{Endpoint: srv.URL})
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryVitals, map[string]string{"name": "LCP"})
		tx.Send(context.Background(), transmit.CategoryBot, map[string]string{"bot_name": "Googlebot"})

		assert.Equal(t, "/api/vitals", <-paths)
		assert.Equal(t, "/api/bot", <-paths)
	})

	t.Run("trailing endpoint slash is tolerated", func(t *testing.T) {
		t.Parallel()

		paths := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths <- r.URL.Path
		}))
		defer srv.Close()

		tx := transmit.New(transmit.Config{Endpoint: srv.URL + "/"})
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
		assert.Equal(t, "/api/track", <-paths)
	})
}

func TestTransmitter_FailureClassification(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx logs status classification", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		buf := &logBuffer{}
		tx := transmit.New(transmit.Config{Endpoint: srv.URL}, transmit.WithLogger(newLogger(buf)))
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
		assert.Contains(t, buf.String(), `"classification":"status"`)
		assert.Contains(t, buf.String(), "502")
	})

	t.Run("unreachable endpoint logs network classification", func(t *testing.T) {
		t.Parallel()

		buf := &logBuffer{}
		tx := transmit.New(
			transmit.Config{Endpoint: "http://127.0.0.1:1"},
			transmit.WithLogger(newLogger(buf)),
		)
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
		assert.Contains(t, buf.String(), `"classification":"network"`)
	})

	t.Run("slow endpoint logs timeout classification", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		buf := &logBuffer{}
		tx := transmit.New(
			transmit.Config{Endpoint: srv.URL, SendTimeout: 50 * time.Millisecond},
			transmit.WithLogger(newLogger(buf)),
		)
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
		assert.Contains(t, buf.String(), `"classification":"timeout"`)
	})

	t.Run("unserializable payload logs config classification", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		buf := &logBuffer{}
		tx := transmit.New(transmit.Config{Endpoint: srv.URL}, transmit.WithLogger(newLogger(buf)))
		defer tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]any{"bad": make(chan int)})
		assert.Contains(t, buf.String(), `"classification":"config"`)
	})
}

func TestTransmitter_Misconfiguration(t *testing.T) {
	t.Parallel()

	t.Run("invalid endpoint disables delivery and logs once", func(t *testing.T) {
		t.Parallel()

		buf := &logBuffer{}
		tx := transmit.New(transmit.Config{Endpoint: "not a url"}, transmit.WithLogger(newLogger(buf)))
		defer tx.Close()

		for range 5 {
			tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
		}

		assert.Equal(t, 1, strings.Count(buf.String(), `"classification":"config"`),
			"misconfiguration must be logged exactly once")
	})

	t.Run("a fresh instance logs again", func(t *testing.T) {
		t.Parallel()

		buf := &logBuffer{}
		for range 2 {
			tx := transmit.New(transmit.Config{Endpoint: ""}, transmit.WithLogger(newLogger(buf)))
			tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
			tx.Close()
		}
		assert.Equal(t, 2, strings.Count(buf.String(), `"classification":"config"`))
	})
}

func TestTransmitter_Close(t *testing.T) {
	t.Parallel()

	t.Run("sends after close are dropped", func(t *testing.T) {
		t.Parallel()

		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer srv.Close()

		tx := transmit.New(transmit.Config{Endpoint: srv.URL})
		tx.Close()

		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
		assert.Zero(t, hits)
	})

	t.Run("close races concurrent sends safely", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		tx := transmit.New(transmit.Config{Endpoint: srv.URL})

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{"k": "v"})
			}()
		}
		tx.Close()
		wg.Wait()

		// The transmitter is fully shut down; late sends stay dropped.
		tx.Send(context.Background(), transmit.CategoryEvent, map[string]string{})
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		tx := transmit.New(transmit.Config{Endpoint: "http://localhost:9"})
		tx.Close()
		assert.NotPanics(t, tx.Close)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		wantErr  error
	}{
		{"valid https", "https://ingest.example.com", nil},
		{"valid http", "http://localhost:8080", nil},
		{"empty", "", transmit.ErrMissingEndpoint},
		{"relative", "/api/track", transmit.ErrInvalidEndpoint},
		{"wrong scheme", "ftp://example.com", transmit.ErrInvalidEndpoint},
		{"no host", "https://", transmit.ErrInvalidEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := transmit.Config{Endpoint: tt.endpoint}.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
