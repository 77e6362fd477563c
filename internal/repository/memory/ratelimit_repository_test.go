package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurant-discovery/internal/repository/memory"
)

func TestRateLimitRepository_Hit(t *testing.T) {
	t.Run("counts within a window", func(t *testing.T) {
		store := memory.NewRateLimitRepository(time.Minute)

		for i := 1; i <= 60; i++ {
			count, err := store.Hit(context.Background(), "10.0.0.1")
			require.NoError(t, err)
			assert.Equal(t, i, count)
		}

		count, err := store.Hit(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, 61, count)
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := memory.NewRateLimitRepository(time.Minute)

		for i := 0; i < 5; i++ {
			_, err := store.Hit(context.Background(), "10.0.0.1")
			require.NoError(t, err)
		}

		count, err := store.Hit(context.Background(), "10.0.0.2")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		store := memory.NewRateLimitRepositoryWithClock(time.Minute, func() time.Time {
			return current
		})

		for i := 0; i < 60; i++ {
			_, err := store.Hit(context.Background(), "10.0.0.1")
			require.NoError(t, err)
		}

		// Still inside the window: counter keeps growing.
		current = current.Add(59 * time.Second)
		count, err := store.Hit(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, 61, count)

		// Past the window boundary: fresh count.
		current = current.Add(2 * time.Minute)
		count, err = store.Hit(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("concurrent hits never lose increments", func(t *testing.T) {
		store := memory.NewRateLimitRepository(time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Hit(context.Background(), "10.0.0.1")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		count, err := store.Hit(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, 101, count)
	})
}
