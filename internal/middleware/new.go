package middleware

import (
	"astro-chart-api/config"
	"astro-chart-api/pkg/log"
)

type Middleware struct {
	l           log.Logger
	corsConfig  config.CORSConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, corsConfig config.CORSConfig, rateLimitConfig config.RateLimitConfig) Middleware {
	var rl *rateLimiter
	if rateLimitConfig.RequestsPerMin > 0 {
		rl = newRateLimiter(rateLimitConfig.RequestsPerMin)
	}
	return Middleware{
		l:           l,
		corsConfig:  corsConfig,
		rateLimiter: rl,
	}
}
