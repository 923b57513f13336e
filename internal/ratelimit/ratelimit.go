package ratelimit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"codeberg.org/courseteen/server/internal/errors"
	"codeberg.org/courseteen/server/internal/logger"
)

// holds rate limiting configuration
type Config struct {
	// limiter formatted rate, e.g. "60-M" (60 per minute); empty disables limiting
	Rate string

	// paths that bypass limiting (health checks, etc.)
	ExemptPaths []string
}

func DefaultConfig() Config {
	return Config{
		Rate:        "60-M",
		ExemptPaths: []string{"/", "/health", "/ping"},
	}
}

// returns a per-client-IP rate limiting middleware backed by an in-memory store
func Middleware(config Config) (gin.HandlerFunc, error) {
	if strings.TrimSpace(config.Rate) == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	rate, err := limiter.NewRateFromFormatted(config.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", config.Rate, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	limited := mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(handleRateLimited),
	)

	return func(c *gin.Context) {
		if slices.Contains(config.ExemptPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		limited(c)
	}, nil
}

func handleRateLimited(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
		"ip", c.ClientIP(),
		"path", c.Request.URL.Path,
	)

	errors.TooManyRequests(c, "too many requests. please slow down.")
	c.Abort()
}
