package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"astro-chart-api/internal/middleware"
	"astro-chart-api/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cors, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.RequestID(), mw.Logging(), mw.Recovery(), mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.cors.AllowedOrigins)

	if srv.environment == string(model.EnvironmentProduction) && srv.rateLimit.RequestsPerMin > 0 && len(srv.trustedProxies) == 0 {
		srv.l.Warn(ctx, "No trusted proxies configured: rate limiting keys on the peer address")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.index)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	api := srv.gin.Group("/api")

	if err := srv.setupChartDomain(context.Background(), api, mw); err != nil {
		return err
	}

	return nil
}
