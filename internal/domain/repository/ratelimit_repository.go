package repository

import "context"

// RateLimitRepository - счетчик запросов с фиксированным окном.
// Counts reset at window boundaries, so a burst straddling a boundary can
// exceed the nominal rate.
type RateLimitRepository interface {
	// Hit records one request for key and returns the count within the
	// current window, including this request. A first request older than
	// the window resets the count to 1.
	Hit(ctx context.Context, key string) (int, error)
}
