package memory

import (
	"context"
	"sync"
	"time"

	"github.com/restaurant-discovery/internal/domain/repository"
)

// rateLimitRepository - процессный счетчик с фиксированным окном.
// Scope is a single process: counters are not shared across instances.
// Horizontal scaling needs the redis-backed store instead.
type rateLimitRepository struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	count int
	start time.Time
}

func NewRateLimitRepository(window time.Duration) repository.RateLimitRepository {
	return &rateLimitRepository{
		window:  window,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// NewRateLimitRepositoryWithClock is used by tests to control time.
func NewRateLimitRepositoryWithClock(window time.Duration, now func() time.Time) repository.RateLimitRepository {
	return &rateLimitRepository{
		window:  window,
		entries: make(map[string]*windowEntry),
		now:     now,
	}
}

func (r *rateLimitRepository) Hit(_ context.Context, key string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.entries[key]
	if !ok || now.Sub(entry.start) > r.window {
		// New window: the first request past the boundary resets to 1.
		r.entries[key] = &windowEntry{count: 1, start: now}
		return 1, nil
	}

	entry.count++
	return entry.count, nil
}
