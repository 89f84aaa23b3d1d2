package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/config"
	"github.com/cfd-platform/cfd-backend/internal/logger"
)

// ErrLimiterClosed is returned by Wait after Close
var ErrLimiterClosed = errors.New("rate limiter is closed")

const redisHealthInterval = 10 * time.Second

// Limiter paces outbound calls to a shared upstream.
// The budget is held in Redis so that every API replica shares it; when Redis
// is unreachable each replica falls back to a reduced local budget.
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait blocks until a token is acquired or ctx is done
	Wait(ctx context.Context) error

	// Close stops the health monitor and closes the Redis connection
	Close() error
}

type limiter struct {
	cfg              config.RateLimitConfig
	key              string
	redis            adapter.RedisClient
	distributed      adapter.RedisRateLimiter
	localLimiter     *rate.Limiter
	preFilterLimiter *rate.Limiter
	clock            adapter.Clock
	redisAvailable   atomic.Bool
	closed           atomic.Bool
	closeOnce        sync.Once
	done             chan struct{}
}

// NewLimiter creates a limiter for the named upstream. rc may be nil, in which
// case only the local limiter is used.
func NewLimiter(cfg config.RateLimitConfig, name string, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	localRate := max(float64(cfg.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0)

	l := &limiter{
		cfg:              cfg,
		key:              cfg.KeyPrefix + name,
		redis:            rc,
		localLimiter:     rate.NewLimiter(rate.Limit(localRate), cfg.Burst),
		preFilterLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		clock:            clock,
		done:             make(chan struct{}),
	}

	if rc == nil {
		logger.Info("Rate limiter running in local mode", zap.String("key", l.key))
		return l, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}
	l.distributed = rc.NewRateLimiter()

	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized",
		zap.String("key", l.key),
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", l.redisAvailable.Load()),
	)

	return l, nil
}

// Do acquires a token and runs fn. A nil limiter runs fn directly.
func Do[T any](ctx context.Context, l Limiter, fn func(ctx context.Context) (T, error)) (T, error) {
	if l != nil {
		if err := l.Wait(ctx); err != nil {
			var zero T
			return zero, err
		}
	}
	return fn(ctx)
}

// Wait blocks until a token is available, ctx is done, or MaxWaitTime elapses
func (l *limiter) Wait(ctx context.Context) error {
	if l.closed.Load() {
		return ErrLimiterClosed
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.MaxWaitTime)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !l.redisAvailable.Load() {
			return l.localLimiter.Wait(ctx)
		}

		allowed, retryAfter, err := l.tryDistributed(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.redisAvailable.Store(false)
			logger.Warn("Redis rate limiter error, falling back to local",
				zap.String("key", l.key),
				zap.Error(err),
			)
			continue
		}
		if allowed {
			return nil
		}

		// 50-150% of retryAfter spreads out replicas retrying together
		jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(jitter):
		}
	}
}

// tryDistributed attempts to acquire a token from Redis
func (l *limiter) tryDistributed(ctx context.Context) (bool, time.Duration, error) {
	// Pre-filter locally to keep Redis round-trips near the allowed rate
	if err := l.preFilterLimiter.Wait(ctx); err != nil {
		return false, 0, err
	}

	res, err := l.distributed.Allow(ctx, l.key, redis_rate.Limit{
		Rate:   l.cfg.RequestsPerSecond,
		Burst:  l.cfg.Burst,
		Period: time.Second,
	})
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.Debug("Rate limit token unavailable, waiting",
			zap.String("key", l.key),
			zap.Duration("retry_after", res.RetryAfter),
		)
		retryAfter := res.RetryAfter
		if retryAfter <= 0 {
			retryAfter = 50 * time.Millisecond
		}
		return false, retryAfter, nil
	}

	return true, 0, nil
}

// monitorRedisHealth periodically pings Redis and restores the distributed path
func (l *limiter) monitorRedisHealth() {
	ticker := l.clock.NewTicker(redisHealthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx)
		cancel()

		available := err == nil
		if !l.redisAvailable.Swap(available) && available {
			logger.Info("Redis connection restored", zap.String("key", l.key))
		}
	}
}

// Close stops the health monitor and closes the Redis connection
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)

		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}

	if cfg.MaxWaitTime <= 0 {
		cfg.MaxWaitTime = 30 * time.Second
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "cfd:rpc:limiter:"
	}

	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}

	return nil
}
