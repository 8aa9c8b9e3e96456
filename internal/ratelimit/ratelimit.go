package ratelimit

import (
	"fmt"

	"codeberg.org/atelier/server/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Middleware builds a per-client-IP rate limiter backed by Redis.
// formatted is a limiter rate string such as "30-M" (30 per minute).
// Limit breaches flow through the error middleware as RATE_LIMIT errors.
func Middleware(client *redis.Client, formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate %q: %w", formatted, err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter store: %w", err)
	}

	middleware := mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			apperrors.Abort(c, apperrors.RateLimited("too many requests, slow down"))
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// a limiter-store outage must not take checkout down with it
			c.Next()
		}),
	)

	return middleware, nil
}
