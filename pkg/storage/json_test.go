package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trackkit/pkg/storage"
)

func TestJSONHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	type sessionData struct {
		SessionID    string    `json:"session_id"`
		LastActivity time.Time `json:"last_activity"`
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		in := sessionData{SessionID: "abc123", LastActivity: time.Now().UTC().Truncate(time.Second)}
		require.NoError(t, storage.SetJSON(ctx, store, "session_data", in, 0))

		var out sessionData
		require.NoError(t, storage.GetJSON(ctx, store, "session_data", &out))
		assert.Equal(t, in, out)
	})

	t.Run("missing key passes through", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		var out sessionData
		err := storage.GetJSON(ctx, store, "missing", &out)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "session_data", []byte("{not json"), 0))

		var out sessionData
		err := storage.GetJSON(ctx, store, "session_data", &out)
		assert.ErrorIs(t, err, storage.ErrInvalidEntry)
	})

	t.Run("ttl honored", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		require.NoError(t, storage.SetJSON(ctx, store, "visitor_id", "203-0-113-5", 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)

		var out string
		err := storage.GetJSON(ctx, store, "visitor_id", &out)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
