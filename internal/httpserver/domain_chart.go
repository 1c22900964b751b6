package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chartHTTP "astro-chart-api/internal/chart/delivery/http"
	"astro-chart-api/internal/middleware"
)

// setupChartDomain registers POST /api/chart behind the per-client rate limiter.
func (srv HTTPServer) setupChartDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chartHTTP.New(srv.l, srv.chartUC)
	chartHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Chart domain registered at POST /api/chart")
	return nil
}
