//go:build unit

package sessionstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"
	"vander-key-store/internal/infra/sessionstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session reports not found", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()

		_, err := store.Get(ctx, "sess_missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("put then get returns the same association", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		want := sampleSessionKey("sess_123")

		require.NoError(t, store.Put(ctx, want))
		got, err := store.Get(ctx, "sess_123")
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SessionKey mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("issued association is stored unchanged", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		rec, err := key.NewRecord("VANDER-QW12-ER34-TY56", key.PlanLifetime, time.Date(2026, 4, 10, 8, 0, 0, 123456789, time.UTC))
		require.NoError(t, err)
		want := key.NewSessionKey("sess_issued", rec, "buyer@example.com")

		require.NoError(t, store.Put(ctx, want))
		got, err := store.Get(ctx, "sess_issued")
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SessionKey mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, sampleSessionKey("sess_123")))

		got, err := store.Get(ctx, "sess_123")
		require.NoError(t, err)
		got.Key = "tampered"

		again, err := store.Get(ctx, "sess_123")
		require.NoError(t, err)
		assert.Equal(t, "VANDER-AB12-CD34-EF56", again.Key)
	})

	t.Run("later put overwrites", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		first := sampleSessionKey("sess_123")
		second := sampleSessionKey("sess_123")
		second.Key = "VANDER-ZZZZ-ZZZZ-ZZZZ"

		require.NoError(t, store.Put(ctx, first))
		require.NoError(t, store.Put(ctx, second))

		got, err := store.Get(ctx, "sess_123")
		require.NoError(t, err)
		assert.Equal(t, "VANDER-ZZZZ-ZZZZ-ZZZZ", got.Key)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id := fmt.Sprintf("sess_%d", i)
				_ = store.Put(ctx, sampleSessionKey(id))
				_, _ = store.Get(ctx, id)
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, store.Len())
	})
}
