package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"astro-chart-api/config"
	"astro-chart-api/internal/chart"
	"astro-chart-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware settings
	trustedProxies []string
	cors           config.CORSConfig
	rateLimit      config.RateLimitConfig

	// Chart domain
	chartUC chart.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For; nil trusts no proxy.
	TrustedProxies []string

	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig

	// Chart domain
	ChartUseCase chart.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		trustedProxies: cfg.TrustedProxies,
		cors:           cfg.CORS,
		rateLimit:      cfg.RateLimit,
		chartUC:        cfg.ChartUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chartUC == nil {
		return errors.New("chart use case is required")
	}
	return nil
}
