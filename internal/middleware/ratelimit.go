package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/request"
)

const (
	// DefaultRate is the per-IP limit on the API routes. Every API call may
	// reach the paid model, so the default is deliberately low.
	DefaultRate = "20-M"

	rateLimitPrefix = "youthwell_ratelimit"
)

// RateLimiter limits API requests per client IP with ulule/limiter. Counters
// live in Redis when a URL is configured, otherwise in process memory.
type RateLimiter struct {
	instance *limiter.Limiter
	client   *redis.Client
	logger   *zap.Logger
}

// NewRedisClient parses redisURL and verifies the server answers.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewRateLimiter creates a limiter enforcing rate ("<limit>-<S|M|H|D>").
// A nil client selects the in-memory store.
func NewRateLimiter(client *redis.Client, rate string, logger *zap.Logger) (*RateLimiter, error) {
	if rate == "" {
		rate = DefaultRate
	}
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var store limiter.Store
	if client != nil {
		store, err = redisstore.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: rateLimitPrefix})
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis rate limit store: %w", err)
		}
	} else {
		store = memorystore.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	return &RateLimiter{
		instance: limiter.New(store, parsed),
		client:   client,
		logger:   logger,
	}, nil
}

// Handler wraps next with the limit. Exceeding it yields a JSON 429.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	mw := stdlibmw.NewMiddleware(l.instance,
		stdlibmw.WithKeyGetter(request.ClientIP),
		stdlibmw.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, http.StatusTooManyRequests, "Too many requests. Please slow down.", l.logger)
		}),
		stdlibmw.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			l.logger.Error("rate_limit_store_error",
				zap.Error(err),
				zap.String("request_id", request.RequestID(r.Context())),
			)
			WriteError(w, http.StatusServiceUnavailable, "Service temporarily unavailable", l.logger)
		}),
	)
	return mw.Handler(next)
}

// Backend names the counter store.
func (l *RateLimiter) Backend() string {
	if l.client != nil {
		return "redis"
	}
	return "memory"
}

// Ping checks the counter store. The memory store is always reachable.
func (l *RateLimiter) Ping(ctx context.Context) error {
	if l.client == nil {
		return nil
	}
	return l.client.Ping(ctx).Err()
}

// Close releases the Redis connection, if any.
func (l *RateLimiter) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}
