package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/saricare/booking-api/internal/pkg/metrics"
)

// Limiter counts a request for key and reports whether it may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients, keyed by real IP, that exceed the limiter's
// budget. Limiter failures let the request through.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later.")
			}
			return next(c)
		}
	}
}

type memoryLimiter struct {
	store *echomiddleware.RateLimiterMemoryStore
}

// NewMemoryLimiter is the per-process fallback used when Redis is not
// configured: a token bucket refilling max tokens per window.
func NewMemoryLimiter(max int64, window time.Duration) Limiter {
	return &memoryLimiter{store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
		echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(max) / window.Seconds()),
			Burst:     int(max),
			ExpiresIn: window,
		},
	)}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.store.Allow(key)
}
