package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
)

// rateLimitRepository - счетчик с фиксированным окном поверх redis.
// INCR plus a TTL set on first hit gives the same window semantics as the
// in-memory store, shared across all API instances.
type rateLimitRepository struct {
	client *redis.Client
	window time.Duration
	logger *zap.Logger
}

func NewRateLimitRepository(r *Redis, window time.Duration) repository.RateLimitRepository {
	return &rateLimitRepository{
		client: r.Client(),
		window: window,
		logger: r.logger,
	}
}

func (r *rateLimitRepository) Hit(ctx context.Context, key string) (int, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		r.logger.Error("Rate limit counter increment failed",
			zap.String("key", key),
			zap.Error(err))
		return 0, apperrors.ErrInternalServer.WithDetails(err.Error())
	}

	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			r.logger.Warn("Failed to set rate limit window expiry",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return int(count), nil
}
