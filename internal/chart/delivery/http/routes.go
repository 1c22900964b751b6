package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extra middleware, such as the rate limiter, applies to the chart route only.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(mws)+1)
	handlers = append(handlers, mws...)
	handlers = append(handlers, h.Generate)
	rg.POST("/chart", handlers...)
}
