package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/scribe/internal/config"
	"github.com/bornholm/scribe/internal/http/middleware/ratelimit"
)

func getWriteMiddlewaresFromConfig(ctx context.Context, conf *config.Config) []func(http.Handler) http.Handler {
	middlewares := make([]func(http.Handler) http.Handler, 0)

	rateLimit := conf.HTTP.RateLimit
	if !rateLimit.Enabled {
		return middlewares
	}

	middlewares = append(middlewares, ratelimit.Middleware(
		ratelimit.WithTrustHeaders(rateLimit.TrustHeaders),
		ratelimit.WithRate(rateLimit.Interval, rateLimit.MaxBurst),
		ratelimit.WithCache(rateLimit.CacheSize, rateLimit.CacheTTL),
	))

	return middlewares
}
